package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	savemoney "github.com/etnz/savemoney"
	"github.com/etnz/savemoney/i18n"
)

// RenderLimit caps the transaction list at the newest records; older
// ones are summarized by a trailing count.
const RenderLimit = 50

// SignedAmount renders an amount with the sign of its transaction type.
func SignedAmount(tx savemoney.Transaction) string {
	sign := "+"
	if tx.Type == savemoney.Expense {
		sign = "-"
	}
	return fmt.Sprintf("%s %s", sign, tx.Amount)
}

// Transaction renders a transaction to a one-line string.
func Transaction(tx savemoney.Transaction, t *i18n.Table) string {
	return fmt.Sprintf("%s %s (%s)", SignedAmount(tx), tx.Description, t.FullDate(tx.Date, tx.Clock()))
}

// TransactionsMarkdown renders a transaction table, newest first,
// capped at RenderLimit rows.
func TransactionsMarkdown(txs []savemoney.Transaction, t *i18n.Table) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(t.T("Transactions"))

	sorted := savemoney.SortedByDateDesc(txs)
	hidden := 0
	if len(sorted) > RenderLimit {
		hidden = len(sorted) - RenderLimit
		sorted = sorted[:RenderLimit]
	}

	rows := make([][]string, 0, len(sorted))
	for _, tx := range sorted {
		rows = append(rows, []string{
			fmt.Sprintf("%d", tx.ID),
			t.FullDate(tx.Date, tx.Clock()),
			tx.Description,
			SignedAmount(tx),
			tx.Notes,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", t.T("Date"), t.T("Description"), t.T("Amount"), t.T("Notes")},
		Rows:   rows,
	})

	if hidden > 0 {
		doc.PlainTextf("(+%d)", hidden)
	}

	return doc.String()
}
