package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/savemoney/renderer"
)

// listCmd lists transactions, newest first, optionally filtered by a
// free-text search term.
type listCmd struct {
	query string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list transactions, newest first" }
func (*listCmd) Usage() string {
	return `smy list [-q <term>]

  Lists transactions, newest first. The -q term is matched as a
  case-insensitive substring against description, notes and amount.

`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Free-text search term.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	table, settings, err := OpenTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.TransactionsMarkdown(ledger.Search(c.query), table), settings)
	return subcommands.ExitSuccess
}
