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

// reportCmd displays the periodic report for a period around a
// reference date.
type reportCmd struct {
	period string
	date   string
	prev   int
	next   int
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the periodic report" }
func (*reportCmd) Usage() string {
	return `smy report [-p day|week|month|year] [-d <date>] [-prev <n> | -next <n>]

  Displays totals, change indicators and statistics for the period
  containing the reference date. -prev and -next shift the reference
  date by whole periods; a reference date after today is rejected.
  Weeks are anchored to the calendar month: the first week of a month
  starts on the 1st and the last week is clipped to the month's end.

Usage Examples:
$ smy report
$ smy report -p week -d 2026-02-15
$ smy report -p month -prev 1

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "month", "Period kind: day, week, month or year.")
	f.StringVar(&c.date, "d", "", "Reference date. Defaults to the standard reference date.")
	f.IntVar(&c.prev, "prev", 0, "Shift the reference date back by n periods.")
	f.IntVar(&c.next, "next", 0, "Shift the reference date forward by n periods.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := savemoney.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	report := savemoney.NewReport(ledger)
	report.SetPeriod(period)

	if c.date != "" {
		on, err := savemoney.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		if !report.Goto(on) {
			fmt.Fprintf(os.Stderr, "Error: reference date %s is in the future\n", on)
			return subcommands.ExitUsageError
		}
	}
	if n := c.next - c.prev; n != 0 {
		if !report.Navigate(n) {
			fmt.Fprintln(os.Stderr, "Error: cannot navigate past today")
			return subcommands.ExitUsageError
		}
	}

	table, settings, err := OpenTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PeriodicMarkdown(report.Compute(), table), settings)
	return subcommands.ExitSuccess
}
