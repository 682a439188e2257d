package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	savemoney "github.com/etnz/savemoney"
)

// pinCmd manages the four-digit access PIN.
type pinCmd struct {
	set     string
	verify  string
	disable bool
}

func (*pinCmd) Name() string     { return "pin" }
func (*pinCmd) Synopsis() string { return "manage the access PIN" }
func (*pinCmd) Usage() string {
	return `smy pin [-set <pin>] [-verify <pin>] [-disable]

  Without flags, shows whether a PIN is set. -set enables or changes
  the four-digit PIN, -disable removes it, and -verify checks a
  candidate and reports through the exit status.

`
}

func (c *pinCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.set, "set", "", "Enable or change the PIN, exactly four digits.")
	f.StringVar(&c.verify, "verify", "", "Check a candidate PIN.")
	f.BoolVar(&c.disable, "disable", false, "Remove the PIN.")
}

func (c *pinCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings, path, err := OpenSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	switch {
	case c.set != "":
		if err := settings.SetPIN(c.set); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if err := savemoney.SaveSettings(path, settings); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving settings: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println("PIN enabled")

	case c.disable:
		settings.DisablePIN()
		if err := savemoney.SaveSettings(path, settings); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving settings: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println("PIN disabled")

	case c.verify != "":
		if !settings.VerifyPIN(c.verify) {
			fmt.Fprintln(os.Stderr, "Error: wrong PIN")
			return subcommands.ExitFailure
		}
		fmt.Println("PIN ok")

	default:
		if settings.PINEnabled() {
			fmt.Println("PIN is set")
		} else {
			fmt.Println("no PIN set")
		}
	}
	return subcommands.ExitSuccess
}
