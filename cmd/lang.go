package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	savemoney "github.com/etnz/savemoney"
)

// langCmd shows or changes the display language.
type langCmd struct{}

func (*langCmd) Name() string     { return "lang" }
func (*langCmd) Synopsis() string { return "show or change the display language" }
func (*langCmd) Usage() string {
	return `smy lang [id|en]

  Without an argument, shows the current language. With one, switches
  to it.

`
}

func (*langCmd) SetFlags(f *flag.FlagSet) {}

func (c *langCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings, path, err := OpenSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if f.NArg() == 0 {
		fmt.Printf("language: %s\n", settings.Language)
		return subcommands.ExitSuccess
	}

	lang, err := savemoney.ParseLanguage(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	settings.Language = lang
	if err := savemoney.SaveSettings(path, settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving settings: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("language: %s\n", settings.Language)
	return subcommands.ExitSuccess
}
