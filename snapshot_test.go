package savemoney

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStoreLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "transactions.json"))
	l := store.Load()
	if l.Len() != len(SeedTransactions()) {
		t.Errorf("Len() = %d, want the seed ledger", l.Len())
	}
}

func TestStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.json")
	if err := os.WriteFile(path, []byte("{ not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	l := NewStore(path).Load()
	if l.Len() != len(SeedTransactions()) {
		t.Errorf("Len() = %d, want the seed ledger", l.Len())
	}
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "transactions.json")
	store := NewStore(path)

	l := NewLedger()
	l.ReplaceAll([]Transaction{
		{ID: 7, Type: Expense, Description: "Pulsa", Amount: 25_000, Date: NewDate(2026, time.March, 1), Time: "10:00"},
	})
	if err := store.Save(l); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	back := store.Load()
	if back.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", back.Len())
	}
	tx, ok := back.Get(7)
	if !ok || tx.Description != "Pulsa" {
		t.Errorf("loaded record = %+v", tx)
	}
}

func TestStoreAutoSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.json")
	store := NewStore(path)

	l := store.Load()
	tx, err := l.Add(Transaction{Type: Expense, Description: "Kopi", Amount: 25_000, Date: NewDate(2026, time.February, 20)})
	if err != nil {
		t.Fatalf("Add() = %v", err)
	}

	// A fresh load sees the mutation: the snapshot was written as a
	// side effect of Add.
	back := store.Load()
	if _, ok := back.Get(tx.ID); !ok {
		t.Errorf("record %d not persisted by auto-save", tx.ID)
	}
}

func TestBackupFileName(t *testing.T) {
	got := BackupFileName(NewDate(2026, time.February, 15))
	if got != "backup_2026-02-15.json" {
		t.Errorf("BackupFileName() = %q, want %q", got, "backup_2026-02-15.json")
	}
}
