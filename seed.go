package savemoney

import "time"

// SeedTransactions returns the built-in starter ledger used when no
// snapshot exists yet, or when the snapshot on disk cannot be parsed.
func SeedTransactions() []Transaction {
	return []Transaction{
		{ID: 1, Type: Income, Description: "Tabungan", Amount: 116_555, Date: NewDate(2026, time.February, 19), Time: "07:36"},
		{ID: 2, Type: Income, Description: "Gaji", Amount: 5_000_000, Date: NewDate(2026, time.February, 1), Time: "09:00"},
		{ID: 3, Type: Expense, Description: "Makan", Amount: 50_000, Date: NewDate(2026, time.February, 5), Time: "12:30"},
		{ID: 4, Type: Expense, Description: "Transport", Amount: 20_000, Date: NewDate(2026, time.February, 10), Time: "08:15"},
		{ID: 5, Type: Income, Description: "Bonus", Amount: 1_000_000, Date: NewDate(2026, time.February, 15), Time: "16:20"},
	}
}

// NewSeededLedger returns a ledger pre-filled with the seed records.
func NewSeededLedger() *Ledger {
	l := NewLedger()
	l.transactions = SeedTransactions()
	return l
}
