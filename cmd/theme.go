package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	savemoney "github.com/etnz/savemoney"
)

// themeCmd shows or changes the display settings.
type themeCmd struct {
	mode      string
	name      string
	darkStart string
	darkEnd   string
}

func (*themeCmd) Name() string     { return "theme" }
func (*themeCmd) Synopsis() string { return "show or change the display settings" }
func (*themeCmd) Usage() string {
	return `smy theme [-mode dark|light|auto] [-name <theme>] [-dark-start HH:MM] [-dark-end HH:MM]

  Without flags, shows the current display settings and the variant
  they resolve to right now. The auto mode switches to dark inside the
  night window, which may cross midnight.

Usage Examples:
$ smy theme
$ smy theme -mode auto -dark-start 21:00 -dark-end 06:00
$ smy theme -name ocean

`
}

func (c *themeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.mode, "mode", "", "Display mode: dark, light or auto.")
	f.StringVar(&c.name, "name", "", "Theme: default, ocean, forest, sunset or space.")
	f.StringVar(&c.darkStart, "dark-start", "", "Start of the auto night window, HH:MM.")
	f.StringVar(&c.darkEnd, "dark-end", "", "End of the auto night window, HH:MM.")
}

func (c *themeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	settings, path, err := OpenSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	changed := false
	if c.mode != "" {
		mode, err := savemoney.ParseThemeMode(c.mode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		settings.Mode = mode
		changed = true
	}
	if c.name != "" {
		name, err := savemoney.ParseThemeName(c.name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		settings.Theme = name
		changed = true
	}
	if c.darkStart != "" || c.darkEnd != "" {
		start, end := settings.DarkStart, settings.DarkEnd
		if c.darkStart != "" {
			start = c.darkStart
		}
		if c.darkEnd != "" {
			end = c.darkEnd
		}
		if err := settings.SetAutoDarkWindow(start, end); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		changed = true
	}

	if changed {
		if err := savemoney.SaveSettings(path, settings); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving settings: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("mode: %s\n", settings.Mode)
	fmt.Printf("theme: %s\n", settings.Theme)
	fmt.Printf("night window: %s - %s\n", settings.DarkStart, settings.DarkEnd)
	fmt.Printf("current variant: %s\n", settings.Variant(nowClock()))
	return subcommands.ExitSuccess
}
