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

// editCmd updates the fields of an existing transaction. Flags left out
// keep the stored value.
type editCmd struct {
	id          int64
	txType      string
	amount      int64
	description string
	date        string
	clock       string
	notes       string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "update the fields of an existing transaction" }
func (*editCmd) Usage() string {
	return `smy edit -id <id> [-type income|expense] [-a <amount>] [-m <description>] [-d <date>] [-t <time>] [-n <notes>]

  Updates a transaction in place. Only the fields given as flags change;
  the record keeps its id and its position in the ledger.

`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Id of the transaction to edit.")
	f.StringVar(&c.txType, "type", "", "New transaction type, income or expense.")
	f.Int64Var(&c.amount, "a", 0, "New amount in whole rupiah.")
	f.StringVar(&c.description, "m", "", "New description.")
	f.StringVar(&c.date, "d", "", "New date.")
	f.StringVar(&c.clock, "t", "", "New wall-clock time HH:MM.")
	f.StringVar(&c.notes, "n", "", "New notes.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	patch, ok := ledger.Get(c.id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: transaction %d not found\n", c.id)
		return subcommands.ExitFailure
	}

	var flagErr error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "type":
			patch.Type = savemoney.TxType(c.txType)
		case "a":
			patch.Amount = savemoney.Rupiah(c.amount)
		case "m":
			patch.Description = c.description
		case "d":
			on, err := savemoney.ParseDate(c.date)
			if err != nil {
				flagErr = err
				return
			}
			patch.Date = on
		case "t":
			patch.Time = c.clock
		case "n":
			patch.Notes = c.notes
		}
	})
	if flagErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", flagErr)
		return subcommands.ExitUsageError
	}

	tx, err := ledger.Update(c.id, patch)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	table, _, err := OpenTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated %s\n", renderer.Transaction(tx, table))
	return subcommands.ExitSuccess
}
