package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	savemoney "github.com/etnz/savemoney"
)

// backupCmd exports the ledger to a dated backup file.
type backupCmd struct {
	output string
}

func (*backupCmd) Name() string     { return "backup" }
func (*backupCmd) Synopsis() string { return "export the ledger to a backup file" }
func (*backupCmd) Usage() string {
	return `smy backup [-o <file>]

  Writes all transactions to a backup file in the snapshot format. The
  file defaults to backup_<date>.json in the current directory.

`
}

func (c *backupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Backup file to write. Defaults to backup_<date>.json.")
}

func (c *backupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	name := c.output
	if name == "" {
		name = savemoney.BackupFileName(savemoney.Today())
	}

	out, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating backup file %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := savemoney.Export(out, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing backup: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Backed up %d transactions to %s\n", ledger.Len(), name)
	return subcommands.ExitSuccess
}
