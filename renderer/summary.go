package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"

	savemoney "github.com/etnz/savemoney"
	"github.com/etnz/savemoney/i18n"
)

// SummaryMarkdown renders the headline income/expense/balance block.
func SummaryMarkdown(totals savemoney.Totals, t *i18n.Table) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(t.T("Summary"))

	table := md.TableSet{
		Header: []string{"", t.T("Amount")},
		Rows: [][]string{
			{t.T("Income"), totals.Income.String()},
			{t.T("Expense"), totals.Expense.String()},
			{t.T("Balance"), totals.Balance.String()},
		},
	}
	doc.Table(table)

	return doc.String()
}
