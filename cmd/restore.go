package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	savemoney "github.com/etnz/savemoney"
)

// restoreCmd replaces the whole ledger with the records of a backup
// file.
type restoreCmd struct {
	input string
}

func (*restoreCmd) Name() string     { return "restore" }
func (*restoreCmd) Synopsis() string { return "replace the ledger with a backup file" }
func (*restoreCmd) Usage() string {
	return `smy restore -i <file>

  Replaces all transactions with the contents of the backup file. The
  file must hold a JSON array of transaction records; on an invalid
  file the ledger is left untouched.

`
}

func (c *restoreCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Backup file to restore from.")
}

func (c *restoreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		fmt.Fprintln(os.Stderr, "Error: -i <file> is required")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening backup file %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := savemoney.Restore(in, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error restoring from %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Restored %d transactions from %s\n", ledger.Len(), c.input)
	return subcommands.ExitSuccess
}
