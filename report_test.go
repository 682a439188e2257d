package savemoney

import (
	"testing"
	"time"
)

// testReport returns a report over the seed ledger with the clock
// pinned to the default reference date.
func testReport() *Report {
	r := NewReport(NewSeededLedger())
	r.now = func() Date { return DefaultReferenceDate }
	return r
}

func TestReportCompute(t *testing.T) {
	r := testReport()
	p := r.Compute()

	if p.Range.From != NewDate(2026, time.February, 1) || p.Range.To != NewDate(2026, time.February, 28) {
		t.Fatalf("range = %s..%s, want the whole of February", p.Range.From, p.Range.To)
	}

	want := Totals{Income: 6_116_555, Expense: 70_000, Balance: 6_046_555}
	if p.Totals != want {
		t.Errorf("totals = %+v, want %+v", p.Totals, want)
	}

	if p.Stats.Count != 5 {
		t.Errorf("count = %d, want 5", p.Stats.Count)
	}
	if p.Stats.Total != 6_186_555 {
		t.Errorf("total = %d, want 6186555", p.Stats.Total)
	}
	if p.Stats.Largest != 5_000_000 {
		t.Errorf("largest = %d, want 5000000", p.Stats.Largest)
	}
	if got := RupiahFromDecimal(p.Stats.Average); got != 1_237_311 {
		t.Errorf("average = %d, want 1237311", got)
	}
}

func TestReportChanges(t *testing.T) {
	r := testReport()
	p := r.Compute()

	// The synthetic previous period is current×factor, so the change
	// only depends on the factor: (1-0.88)/0.88 and (1-1.08)/1.08.
	if !p.IncomeChange.Value.Equal(13.6) || p.IncomeChange.Direction != Up {
		t.Errorf("income change = %+v, want 13.6%% up", p.IncomeChange)
	}
	if !p.ExpenseChange.Value.Equal(-7.4) || p.ExpenseChange.Direction != Down {
		t.Errorf("expense change = %+v, want -7.4%% down", p.ExpenseChange)
	}
	if !p.BalanceChange.Value.Equal(17.6) || p.BalanceChange.Direction != Up {
		t.Errorf("balance change = %+v, want 17.6%% up", p.BalanceChange)
	}
}

func TestReportChangesEmptyPeriod(t *testing.T) {
	r := NewReport(NewLedger())
	r.now = func() Date { return DefaultReferenceDate }
	p := r.Compute()

	// A zero previous period reads as a full rise.
	for _, c := range []Change{p.IncomeChange, p.ExpenseChange, p.BalanceChange} {
		if !c.Value.Equal(100) || c.Direction != Up {
			t.Errorf("change = %+v, want 100%% up", c)
		}
	}
	if p.Stats.Count != 0 || !p.Stats.Average.IsZero() {
		t.Errorf("stats = %+v, want all zero", p.Stats)
	}
}

func TestReportNavigate(t *testing.T) {
	r := testReport()

	// Forward from the reference month would pass today.
	if r.Navigate(1) {
		t.Error("Navigate(1) into the future should be rejected")
	}
	if r.ReferenceDate() != DefaultReferenceDate {
		t.Errorf("reference moved to %s on a rejected navigation", r.ReferenceDate())
	}

	if !r.Navigate(-1) {
		t.Fatal("Navigate(-1) should succeed")
	}
	if r.ReferenceDate() != NewDate(2026, time.January, 15) {
		t.Errorf("reference = %s, want 2026-01-15", r.ReferenceDate())
	}

	// Back to the current month is allowed: the reference equals today.
	if !r.Navigate(1) {
		t.Error("Navigate(1) back to today should succeed")
	}

	r.SetPeriod(Daily)
	if !r.Navigate(-3) {
		t.Fatal("Navigate(-3) days should succeed")
	}
	if r.ReferenceDate() != NewDate(2026, time.February, 12) {
		t.Errorf("reference = %s, want 2026-02-12", r.ReferenceDate())
	}

	r.Reset()
	if r.ReferenceDate() != DefaultReferenceDate {
		t.Errorf("Reset() left reference at %s", r.ReferenceDate())
	}
}

func TestReportGoto(t *testing.T) {
	r := testReport()
	if r.Goto(NewDate(2026, time.March, 1)) {
		t.Error("Goto() a future date should be rejected")
	}
	if !r.Goto(NewDate(2026, time.January, 5)) {
		t.Fatal("Goto() a past date should succeed")
	}
	r.SetPeriod(Weekly)
	p := r.Compute()
	if p.Range.From != NewDate(2026, time.January, 1) || p.Range.To != NewDate(2026, time.January, 7) {
		t.Errorf("range = %s..%s, want the first week of January", p.Range.From, p.Range.To)
	}
}
