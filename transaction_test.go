package savemoney

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestTransactionValidate(t *testing.T) {
	valid := Transaction{
		Type:        Income,
		Description: "Gaji",
		Amount:      5_000_000,
		Date:        NewDate(2026, time.February, 1),
		Time:        "09:00",
	}

	tests := []struct {
		name  string
		mod   func(tx Transaction) Transaction
		field string // empty means the record is valid
	}{
		{"valid", func(tx Transaction) Transaction { return tx }, ""},
		{"bad type", func(tx Transaction) Transaction { tx.Type = "transfer"; return tx }, "type"},
		{"empty description", func(tx Transaction) Transaction { tx.Description = "   "; return tx }, "description"},
		{"long description", func(tx Transaction) Transaction { tx.Description = strings.Repeat("x", 51); return tx }, "description"},
		{"amount below minimum", func(tx Transaction) Transaction { tx.Amount = 99; return tx }, "amount"},
		{"amount above maximum", func(tx Transaction) Transaction { tx.Amount = 1_000_000_000_000; return tx }, "amount"},
		{"bad time", func(tx Transaction) Transaction { tx.Time = "25:00"; return tx }, "time"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.mod(valid).Validate()
			if tt.field == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want no error", err)
				}
				return
			}
			verr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Validate() field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestTransactionValidateDefaults(t *testing.T) {
	tx, err := Transaction{Type: Expense, Description: " Makan ", Amount: 50_000}.Validate()
	if err != nil {
		t.Fatalf("Validate() = %v, want no error", err)
	}
	if tx.Description != "Makan" {
		t.Errorf("description = %q, want trimmed %q", tx.Description, "Makan")
	}
	if tx.Date != Today() {
		t.Errorf("date = %s, want today %s", tx.Date, Today())
	}
	if tx.Time != DefaultTime {
		t.Errorf("time = %q, want %q", tx.Time, DefaultTime)
	}
}

func TestTransactionJSON(t *testing.T) {
	tx := Transaction{
		ID:          1,
		Type:        Income,
		Description: "Gaji",
		Amount:      5_000_000,
		Date:        NewDate(2026, time.February, 1),
		Time:        "09:00",
	}

	data, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("Marshal() = %v", err)
	}
	want := `{"id":1,"type":"income","description":"Gaji","amount":5000000,"date":"2026-02-01","time":"09:00"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var back Transaction
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() = %v", err)
	}
	if !back.Equal(tx) {
		t.Errorf("round-trip = %+v, want %+v", back, tx)
	}
}
