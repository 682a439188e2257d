package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	savemoney "github.com/etnz/savemoney"
	"github.com/etnz/savemoney/renderer"
)

// addCmd records a new transaction. The same command backs both the
// income and the expense verb.
type addCmd struct {
	txType savemoney.TxType

	amount      int64
	description string
	date        string
	clock       string
	notes       string
}

func (c *addCmd) Name() string { return string(c.txType) }
func (c *addCmd) Synopsis() string {
	return fmt.Sprintf("record an %s transaction", c.txType)
}
func (c *addCmd) Usage() string {
	return fmt.Sprintf(`smy %[1]s -a <amount> -m <description> [-d <date>] [-t <time>] [-n <notes>]

  Records an %[1]s of the given amount in whole rupiah. The date defaults
  to today and the time to 00:00.

Usage Examples:
$ smy %[1]s -a 50000 -m "Makan"
$ smy %[1]s -a 5000000 -m "Gaji" -d 2026-02-01 -t 09:00

`, c.txType)
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.amount, "a", 0, "Amount in whole rupiah.")
	f.StringVar(&c.description, "m", "", "Short description, at most 50 characters.")
	f.StringVar(&c.date, "d", "", "Date of the transaction. Defaults to today.")
	f.StringVar(&c.clock, "t", "", "Wall-clock time HH:MM. Defaults to 00:00.")
	f.StringVar(&c.notes, "n", "", "Free-form notes.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var on savemoney.Date
	if c.date != "" {
		var err error
		on, err = savemoney.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	tx, err := ledger.Add(savemoney.Transaction{
		Type:        c.txType,
		Description: c.description,
		Amount:      savemoney.Rupiah(c.amount),
		Date:        on,
		Time:        c.clock,
		Notes:       c.notes,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	table, _, err := OpenTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s (id %d)\n", renderer.Transaction(tx, table), tx.ID)
	return subcommands.ExitSuccess
}
