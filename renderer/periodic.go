package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"

	savemoney "github.com/etnz/savemoney"
	"github.com/etnz/savemoney/i18n"
)

func periodLabel(p savemoney.Period, t *i18n.Table) string {
	switch p {
	case savemoney.Daily:
		return t.T("Day")
	case savemoney.Weekly:
		return t.T("Week")
	case savemoney.Monthly:
		return t.T("Month")
	default:
		return t.T("Year")
	}
}

// formatChange renders a change figure as "▲ 13.6%". The magnitude is
// shown without sign, the marker carries the direction.
func formatChange(c savemoney.Change) string {
	v := strings.TrimPrefix(c.Value.String(), "-")
	return fmt.Sprintf("%s %s", c.Direction.Marker(), v)
}

// PeriodicMarkdown renders one computed periodic report.
func PeriodicMarkdown(p savemoney.Periodic, t *i18n.Table) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s (%s)", t.T("PeriodicReport"), periodLabel(p.Period, t)))
	doc.PlainText(t.DateRange(p.Period, p.Range))

	doc.H2(t.T("Summary"))
	doc.Table(md.TableSet{
		Header: []string{"", t.T("Amount"), t.T("VsPrevious")},
		Rows: [][]string{
			{t.T("Income"), p.Totals.Income.String(), formatChange(p.IncomeChange)},
			{t.T("Expense"), p.Totals.Expense.String(), formatChange(p.ExpenseChange)},
			{t.T("Balance"), p.Totals.Balance.String(), formatChange(p.BalanceChange)},
		},
	})

	doc.H2(t.T("Transactions"))
	doc.Table(md.TableSet{
		Header: []string{t.T("Count"), t.T("Total"), t.T("Average"), t.T("Largest")},
		Rows: [][]string{{
			fmt.Sprintf("%d", p.Stats.Count),
			p.Stats.Total.String(),
			savemoney.RupiahFromDecimal(p.Stats.Average).String(),
			p.Stats.Largest.String(),
		}},
	})

	return doc.String()
}
