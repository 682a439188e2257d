package renderer

import (
	"fmt"
	"strings"
	"testing"
	"time"

	savemoney "github.com/etnz/savemoney"
	"github.com/etnz/savemoney/i18n"
)

func loadTable(t *testing.T) *i18n.Table {
	t.Helper()
	table, err := i18n.Load(savemoney.Indonesian)
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func TestSignedAmount(t *testing.T) {
	in := savemoney.Transaction{Type: savemoney.Income, Amount: 5_000_000}
	if got := SignedAmount(in); got != "+ Rp 5.000.000" {
		t.Errorf("SignedAmount(income) = %q", got)
	}
	out := savemoney.Transaction{Type: savemoney.Expense, Amount: 50_000}
	if got := SignedAmount(out); got != "- Rp 50.000" {
		t.Errorf("SignedAmount(expense) = %q", got)
	}
}

func TestTransactionLine(t *testing.T) {
	table := loadTable(t)
	tx := savemoney.Transaction{
		Type:        savemoney.Income,
		Description: "Gaji",
		Amount:      5_000_000,
		Date:        savemoney.NewDate(2026, time.February, 1),
		Time:        "09:00",
	}
	got := Transaction(tx, table)
	want := "+ Rp 5.000.000 Gaji (Minggu, 1 Februari 2026 • 09:00)"
	if got != want {
		t.Errorf("Transaction() = %q, want %q", got, want)
	}
}

func TestTransactionsMarkdownLimit(t *testing.T) {
	table := loadTable(t)

	var txs []savemoney.Transaction
	for i := 0; i < RenderLimit+10; i++ {
		txs = append(txs, savemoney.Transaction{
			ID:          int64(i + 1),
			Type:        savemoney.Expense,
			Description: fmt.Sprintf("Makan %d", i+1),
			Amount:      50_000,
			Date:        savemoney.NewDate(2026, time.January, 1).Add(i % 30),
			Time:        "12:00",
		})
	}

	out := TransactionsMarkdown(txs, table)
	if !strings.Contains(out, "(+10)") {
		t.Errorf("output should mention the 10 hidden records:\n%s", out)
	}
	if got := strings.Count(out, "Makan "); got != RenderLimit {
		t.Errorf("output lists %d records, want %d", got, RenderLimit)
	}
}

func TestPeriodicMarkdown(t *testing.T) {
	table := loadTable(t)
	report := savemoney.NewReport(savemoney.NewSeededLedger())
	out := PeriodicMarkdown(report.Compute(), table)

	for _, want := range []string{
		"Februari 2026",
		"Rp 6.116.555", // income
		"Rp 70.000",    // expense
		"Rp 6.046.555", // balance
		"▲ 13.6%",
		"▼ 7.4%",
		"▲ 17.6%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
