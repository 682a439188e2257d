package savemoney

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultReferenceDate anchors a fresh periodic report. It is fixed, not
// "today": the report state is transient and resets here every session.
var DefaultReferenceDate = NewDate(2026, time.February, 15)

// Direction is the coarse marker of a period-over-period change.
type Direction int

const (
	Up Direction = iota
	Down
	Flat
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "flat"
	}
}

// Marker returns the glyph shown next to a change figure.
func (d Direction) Marker() string {
	switch d {
	case Up:
		return "▲"
	case Down:
		return "▼"
	default:
		return "•"
	}
}

// Change is a percent change against the previous period and its
// direction. The value keeps its sign; renderers may display the
// magnitude with the marker.
type Change struct {
	Value     Percent
	Direction Direction
}

// The previous period is synthetic: fixed multipliers stand in for
// historical data the app does not keep. Kept exactly as-is for
// compatibility until real history tracking exists.
var (
	prevIncomeFactor  = decimal.RequireFromString("0.88")
	prevExpenseFactor = decimal.RequireFromString("1.08")
	prevBalanceFactor = decimal.RequireFromString("0.85")
)

// syntheticChange compares current against current×factor. A zero
// baseline is defined as a +100% rise.
func syntheticChange(current Rupiah, factor decimal.Decimal) Change {
	cur := decimal.NewFromInt(int64(current))
	prev := cur.Mul(factor)
	if prev.IsZero() {
		return Change{Value: 100, Direction: Up}
	}
	hundred := decimal.NewFromInt(100)
	change := cur.Sub(prev).Div(prev).Mul(hundred)

	c := Change{Value: Percent(change.Round(1).InexactFloat64())}
	switch change.Sign() {
	case 1:
		c.Direction = Up
	case -1:
		c.Direction = Down
	default:
		c.Direction = Flat
	}
	return c
}

// Stats summarizes the transactions of one period. Total sums amounts
// regardless of type; the income/expense split lives in Totals.
type Stats struct {
	Count   int
	Total   Rupiah
	Average decimal.Decimal
	Largest Rupiah
}

func newStats(txs []Transaction) Stats {
	s := Stats{Count: len(txs), Average: decimal.Zero}
	for _, tx := range txs {
		s.Total += tx.Amount
		if tx.Amount > s.Largest {
			s.Largest = tx.Amount
		}
	}
	if s.Count > 0 {
		s.Average = decimal.NewFromInt(int64(s.Total)).Div(decimal.NewFromInt(int64(s.Count)))
	}
	return s
}

// Periodic is one computed report: the resolved date range, the per-period
// statistics and totals, and the change indicators.
type Periodic struct {
	Period Period
	Range  Range
	Stats  Stats
	Totals Totals

	IncomeChange  Change
	ExpenseChange Change
	BalanceChange Change
}

// Report is the navigable periodic report state: a period kind and a
// reference date over a ledger. The state is transient and never
// persisted; navigation replaces it wholesale.
type Report struct {
	ledger *Ledger
	period Period
	ref    Date

	// now bounds navigation; swapped in tests.
	now func() Date
}

// NewReport creates a monthly report anchored at the default reference
// date.
func NewReport(ledger *Ledger) *Report {
	return &Report{
		ledger: ledger,
		period: Monthly,
		ref:    DefaultReferenceDate,
		now:    Today,
	}
}

// Period returns the current period kind.
func (r *Report) Period() Period { return r.period }

// ReferenceDate returns the current reference date.
func (r *Report) ReferenceDate() Date { return r.ref }

// SetPeriod switches the period kind, keeping the reference date.
func (r *Report) SetPeriod(p Period) { r.period = p }

// Navigate shifts the reference date by n units of the current period
// kind. A move that would land after today is rejected and reported as
// false, leaving the state unchanged.
func (r *Report) Navigate(n int) bool {
	next := r.ref.Step(r.period, n)
	if next.After(r.now()) {
		return false
	}
	r.ref = next
	return true
}

// Goto moves the reference date directly, under the same bound as
// Navigate: a date after today is rejected and reported as false.
func (r *Report) Goto(d Date) bool {
	if d.After(r.now()) {
		return false
	}
	r.ref = d
	return true
}

// Reset restores the reference date to the application default.
func (r *Report) Reset() { r.ref = DefaultReferenceDate }

// Compute derives the report for the current period kind and reference
// date.
func (r *Report) Compute() Periodic {
	rng := NewRange(r.ref, r.period)
	txs := r.ledger.Between(rng)
	totals := sumTotals(txs)
	return Periodic{
		Period:        r.period,
		Range:         rng,
		Stats:         newStats(txs),
		Totals:        totals,
		IncomeChange:  syntheticChange(totals.Income, prevIncomeFactor),
		ExpenseChange: syntheticChange(totals.Expense, prevExpenseFactor),
		BalanceChange: syntheticChange(totals.Balance, prevBalanceFactor),
	}
}
