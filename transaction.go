package savemoney

import (
	"encoding/json"
	"strings"
)

// TxType is a typed string distinguishing money coming in from money
// going out.
type TxType string

const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

// ParseTxType parses a transaction type name.
func ParseTxType(s string) (TxType, error) {
	switch TxType(strings.ToLower(s)) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", &ValidationError{Field: "type", Reason: "must be income or expense"}
	}
}

// MaxDescriptionLength bounds the trimmed description.
const MaxDescriptionLength = 50

// Transaction is the atomic ledger record.
type Transaction struct {
	ID          int64  `json:"id"`
	Type        TxType `json:"type"`
	Description string `json:"description"`
	Amount      Rupiah `json:"amount"`
	Date        Date   `json:"date"`
	Time        string `json:"time"`
	Notes       string `json:"notes,omitempty"`
}

// Validate checks the transaction fields and applies quick fixes where
// applicable (trimming the description, defaulting the time). It returns
// the validated (and potentially modified) transaction or a
// ValidationError.
func (t Transaction) Validate() (Transaction, error) {
	if _, err := ParseTxType(string(t.Type)); err != nil {
		return t, err
	}
	t.Description = strings.TrimSpace(t.Description)
	if t.Description == "" {
		return t, &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if len([]rune(t.Description)) > MaxDescriptionLength {
		return t, &ValidationError{Field: "description", Reason: "must be at most 50 characters"}
	}
	if t.Amount < MinAmount {
		return t, &ValidationError{Field: "amount", Reason: "must be at least Rp 100"}
	}
	if t.Amount > MaxAmount {
		return t, &ValidationError{Field: "amount", Reason: "must be at most Rp 999.999.999.999"}
	}
	if t.Date.IsZero() {
		t.Date = Today()
	}
	clock, err := ParseClock(t.Time)
	if err != nil {
		return t, &ValidationError{Field: "time", Reason: "must be HH:MM"}
	}
	t.Time = clock
	return t, nil
}

// When returns the date on which the transaction occurred.
func (t Transaction) When() Date { return t.Date }

// Clock returns the wall-clock time, defaulted when absent.
func (t Transaction) Clock() string {
	if t.Time == "" {
		return DefaultTime
	}
	return t.Time
}

func (t Transaction) Equal(o Transaction) bool { return t == o }

// MarshalJSON implements the json.Marshaler interface with a stable key
// order, so that snapshots diff cleanly.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("type", t.Type)
	w.Append("description", t.Description)
	w.Append("amount", t.Amount)
	w.Append("date", t.Date)
	w.Append("time", t.Clock())
	w.Optional("notes", t.Notes)
	return w.MarshalJSON()
}

// UnmarshalJSON decodes through a tag-only alias to bypass the custom
// marshaler.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	type plain Transaction
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*t = Transaction(p)
	return nil
}
