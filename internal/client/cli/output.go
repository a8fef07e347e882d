package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

func (a *App) ok(format string, args ...any) {
	fmt.Fprintln(a.out, color.GreenString("✓")+" "+fmt.Sprintf(format, args...))
}

func (a *App) fail(err error) {
	fmt.Fprintln(a.out, color.RedString("✗")+" "+err.Error())
}

func (a *App) hint(format string, args ...any) {
	fmt.Fprintln(a.out, color.CyanString("→")+" "+fmt.Sprintf(format, args...))
}

// startSpinner shows a spinner on w while a slow call runs. The spinner is
// silent when w is not a terminal.
func startSpinner(w io.Writer, message string) func() {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message
	_ = s.Color("cyan")
	s.Start()
	return s.Stop
}
