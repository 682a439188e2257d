package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/glamour"

	savemoney "github.com/etnz/savemoney"
)

// nowClock returns the current wall-clock time in HH:MM form.
func nowClock() string { return time.Now().Format(savemoney.TimeFormat) }

// printMarkdown renders markdown to the terminal. The glamour style
// follows the display variant the settings resolve to right now, so the
// auto dark mode applies to report output too. On a render failure the
// raw markdown is printed instead.
func printMarkdown(src string, settings savemoney.Settings) {
	style := string(settings.Variant(nowClock()))
	out, err := glamour.Render(src, style)
	if err != nil {
		fmt.Print(src)
		return
	}
	fmt.Print(out)
}
