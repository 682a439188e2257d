package savemoney

import (
	"iter"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Snapshotter persists the ledger after a mutation. Writes are best
// effort: the in-memory mutation has already succeeded and is never
// rolled back on a write failure.
type Snapshotter interface {
	Save(l *Ledger) error
}

// Ledger is the insertion-ordered collection of all transaction records
// for the session. It is mutated only through Add/Update/Remove/
// ReplaceAll/Clear and persists itself through the attached Snapshotter
// after every mutation.
type Ledger struct {
	transactions []Transaction
	snapshotter  Snapshotter

	// nowMillis feeds id generation; swapped in tests.
	nowMillis func() int64
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		transactions: make([]Transaction, 0),
		nowMillis:    func() int64 { return time.Now().UnixMilli() },
	}
}

// AutoSave attaches a Snapshotter that is invoked after every mutation.
func (l *Ledger) AutoSave(s Snapshotter) { l.snapshotter = s }

// persist writes the snapshot, fire-and-forget. A failed write only
// costs the on-disk copy, never the session.
func (l *Ledger) persist() {
	if l.snapshotter == nil {
		return
	}
	if err := l.snapshotter.Save(l); err != nil {
		log.Printf("warning: could not persist ledger: %v", err)
	}
}

// nextID derives a fresh id from the clock, bumped past any existing id
// so that ids stay unique even when two records land on the same
// millisecond (or the snapshot was restored from a faster machine).
func (l *Ledger) nextID() int64 {
	id := l.nowMillis()
	for _, tx := range l.transactions {
		if tx.ID >= id {
			id = tx.ID + 1
		}
	}
	return id
}

// Add validates the record, assigns it a fresh unique id, appends it to
// the end of the ledger and persists. It returns the stored record.
func (l *Ledger) Add(tx Transaction) (Transaction, error) {
	tx, err := tx.Validate()
	if err != nil {
		return Transaction{}, err
	}
	tx.ID = l.nextID()
	l.transactions = append(l.transactions, tx)
	l.persist()
	return tx, nil
}

// Get returns the transaction with the given id.
func (l *Ledger) Get(id int64) (Transaction, bool) {
	for _, tx := range l.transactions {
		if tx.ID == id {
			return tx, true
		}
	}
	return Transaction{}, false
}

// Update replaces all mutable fields of the transaction with the given id
// atomically, keeping its id and its position in the ordering. It returns
// ErrNotFound if the id is absent, or a ValidationError (leaving the
// original record untouched) if the merged fields are invalid.
func (l *Ledger) Update(id int64, patch Transaction) (Transaction, error) {
	for i, tx := range l.transactions {
		if tx.ID != id {
			continue
		}
		patch.ID = id
		merged, err := patch.Validate()
		if err != nil {
			return Transaction{}, err
		}
		l.transactions[i] = merged
		l.persist()
		return merged, nil
	}
	return Transaction{}, ErrNotFound
}

// Remove deletes the transaction with the given id and persists. Removing
// an absent id is a no-op: deletes are idempotent.
func (l *Ledger) Remove(id int64) {
	for i, tx := range l.transactions {
		if tx.ID == id {
			l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
			l.persist()
			return
		}
	}
}

// ReplaceAll swaps the whole ledger for the given records, preserving
// their order, and persists. It backs the restore operation; the records
// have already passed the snapshot shape check in DecodeSnapshot.
func (l *Ledger) ReplaceAll(records []Transaction) {
	l.transactions = append(l.transactions[:0:0], records...)
	l.persist()
}

// Clear empties the ledger and persists.
func (l *Ledger) Clear() {
	l.transactions = l.transactions[:0]
	l.persist()
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns an iterator that yields each transaction in its
// insertion order.
func (l *Ledger) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Totals is the headline income/expense/balance triple.
type Totals struct {
	Income  Rupiah
	Expense Rupiah
	Balance Rupiah
}

// Totals sums the ledger by type. The balance is floored at zero:
// overspending shows an empty wallet, not a debt.
func (l *Ledger) Totals() Totals {
	return sumTotals(l.transactions)
}

func sumTotals(txs []Transaction) Totals {
	var t Totals
	for _, tx := range txs {
		if tx.Type == Income {
			t.Income += tx.Amount
		} else {
			t.Expense += tx.Amount
		}
	}
	t.Balance = t.Income - t.Expense
	if t.Balance < 0 {
		t.Balance = 0
	}
	return t
}

// Search returns the transactions matching a free-text term, in insertion
// order. The match is a case-insensitive substring test over description,
// notes and the amount rendered as plain digits. An empty term matches
// everything.
func (l *Ledger) Search(term string) []Transaction {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return append([]Transaction(nil), l.transactions...)
	}
	var out []Transaction
	for _, tx := range l.transactions {
		if strings.Contains(strings.ToLower(tx.Description), term) ||
			strings.Contains(strings.ToLower(tx.Notes), term) ||
			strings.Contains(strconv.FormatInt(int64(tx.Amount), 10), term) {
			out = append(out, tx)
		}
	}
	return out
}

// Between returns the transactions whose date falls inside the inclusive
// range, in insertion order.
func (l *Ledger) Between(r Range) []Transaction {
	var out []Transaction
	for _, tx := range l.transactions {
		if r.Contains(tx.Date) {
			out = append(out, tx)
		}
	}
	return out
}

// SortedByDateDesc returns a copy of the given records ordered newest
// first by date and wall-clock time. The sort is stable so same-moment
// records keep their insertion order. This is the display order; the
// ledger itself stays insertion-ordered.
func SortedByDateDesc(txs []Transaction) []Transaction {
	out := append([]Transaction(nil), txs...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[j].Date.Before(out[i].Date)
		}
		return out[j].Clock() < out[i].Clock()
	})
	return out
}
