package savemoney

import (
	"errors"
	"testing"
	"time"
)

// testLedger returns a seeded ledger with a deterministic clock for id
// generation.
func testLedger() *Ledger {
	l := NewSeededLedger()
	millis := int64(1000)
	l.nowMillis = func() int64 { millis++; return millis }
	return l
}

func TestLedgerAdd(t *testing.T) {
	l := testLedger()
	n := l.Len()

	tx, err := l.Add(Transaction{Type: Expense, Description: "Kopi", Amount: 25_000, Date: NewDate(2026, time.February, 20)})
	if err != nil {
		t.Fatalf("Add() = %v", err)
	}
	if l.Len() != n+1 {
		t.Errorf("Len() = %d, want %d", l.Len(), n+1)
	}
	if _, ok := l.Get(tx.ID); !ok {
		t.Errorf("Get(%d) not found after Add", tx.ID)
	}

	// Seed ids reach 5, the clock starts above that, so ids keep
	// strictly increasing.
	tx2, err := l.Add(Transaction{Type: Income, Description: "Cashback", Amount: 10_000, Date: NewDate(2026, time.February, 21)})
	if err != nil {
		t.Fatalf("Add() = %v", err)
	}
	if tx2.ID <= tx.ID {
		t.Errorf("ids not increasing: %d then %d", tx.ID, tx2.ID)
	}
}

func TestLedgerAddRejectsInvalid(t *testing.T) {
	l := testLedger()
	n := l.Len()
	if _, err := l.Add(Transaction{Type: Expense, Description: "", Amount: 25_000}); err == nil {
		t.Fatal("Add() with empty description should fail")
	}
	if l.Len() != n {
		t.Errorf("Len() = %d after rejected Add, want %d", l.Len(), n)
	}
}

func TestLedgerUpdate(t *testing.T) {
	l := testLedger()

	got, err := l.Update(2, Transaction{Type: Income, Description: "Gaji Februari", Amount: 5_500_000, Date: NewDate(2026, time.February, 1), Time: "09:00"})
	if err != nil {
		t.Fatalf("Update() = %v", err)
	}
	if got.ID != 2 {
		t.Errorf("updated id = %d, want 2", got.ID)
	}
	if got.Description != "Gaji Februari" || got.Amount != 5_500_000 {
		t.Errorf("updated record = %+v", got)
	}

	// The record keeps its position.
	var ids []int64
	for _, tx := range l.Transactions() {
		ids = append(ids, tx.ID)
	}
	if ids[1] != 2 {
		t.Errorf("record 2 moved to position %v", ids)
	}
}

func TestLedgerUpdateMissing(t *testing.T) {
	l := testLedger()
	_, err := l.Update(42, Transaction{Type: Income, Description: "x", Amount: 1_000})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update(42) = %v, want ErrNotFound", err)
	}
}

func TestLedgerUpdateInvalidLeavesRecord(t *testing.T) {
	l := testLedger()
	before, _ := l.Get(3)
	if _, err := l.Update(3, Transaction{Type: Expense, Description: "", Amount: 50_000}); err == nil {
		t.Fatal("Update() with empty description should fail")
	}
	after, _ := l.Get(3)
	if !after.Equal(before) {
		t.Errorf("record changed on failed update: %+v, want %+v", after, before)
	}
}

func TestLedgerRemove(t *testing.T) {
	l := testLedger()
	n := l.Len()

	l.Remove(3)
	if l.Len() != n-1 {
		t.Errorf("Len() = %d, want %d", l.Len(), n-1)
	}
	if _, ok := l.Get(3); ok {
		t.Error("Get(3) found after Remove")
	}

	// Removing again is a no-op.
	l.Remove(3)
	if l.Len() != n-1 {
		t.Errorf("Len() = %d after second Remove, want %d", l.Len(), n-1)
	}
}

func TestLedgerTotals(t *testing.T) {
	l := testLedger()
	got := l.Totals()
	want := Totals{Income: 6_116_555, Expense: 70_000, Balance: 6_046_555}
	if got != want {
		t.Errorf("Totals() = %+v, want %+v", got, want)
	}
}

func TestLedgerTotalsBalanceFloor(t *testing.T) {
	l := NewLedger()
	l.transactions = []Transaction{
		{ID: 1, Type: Income, Description: "a", Amount: 1_000, Date: NewDate(2026, time.February, 1)},
		{ID: 2, Type: Expense, Description: "b", Amount: 5_000, Date: NewDate(2026, time.February, 2)},
	}
	if got := l.Totals().Balance; got != 0 {
		t.Errorf("Balance = %d, want 0 when expenses exceed income", got)
	}
}

func TestLedgerSearch(t *testing.T) {
	l := testLedger()
	tests := []struct {
		term string
		want int
	}{
		{"", 5},
		{"  ", 5},
		{"gaji", 1},
		{"GAJI", 1},
		{"an", 3}, // Tabungan, Makan, Transport
		{"116555", 1},
		{"nothing here", 0},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			if got := l.Search(tt.term); len(got) != tt.want {
				t.Errorf("Search(%q) returned %d records, want %d", tt.term, len(got), tt.want)
			}
		})
	}
}

func TestLedgerBetween(t *testing.T) {
	l := testLedger()
	r := NewRange(NewDate(2026, time.February, 5), Weekly) // Feb 1 to 7
	got := l.Between(r)
	if len(got) != 2 {
		t.Fatalf("Between(%s..%s) returned %d records, want 2", r.From, r.To, len(got))
	}
}

func TestSortedByDateDesc(t *testing.T) {
	l := testLedger()
	sorted := SortedByDateDesc(l.Search(""))
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if cur.Date.After(prev.Date) {
			t.Fatalf("records out of order: %s before %s", prev.Date, cur.Date)
		}
		if cur.Date == prev.Date && cur.Clock() > prev.Clock() {
			t.Fatalf("same-day records out of order: %s before %s", prev.Clock(), cur.Clock())
		}
	}
	if sorted[0].Description != "Tabungan" {
		t.Errorf("newest record = %q, want %q", sorted[0].Description, "Tabungan")
	}
}
