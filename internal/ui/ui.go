package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// UI writes diagnostics to the error stream, styled when it is a terminal.
// Reports themselves never go through UI; they are written to the output
// file only.
type UI struct {
	ErrWriter io.Writer
	Styles    *Styles
	Verbose   bool
}

// New creates a new UI instance with automatic TTY detection on errW
func New(errW io.Writer, verbose bool) *UI {
	return &UI{
		ErrWriter: errW,
		Styles:    NewStyles(isTerminal(errW)),
		Verbose:   verbose,
	}
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// IsInteractive returns true if the error stream is a terminal
func (u *UI) IsInteractive() bool {
	return u.Styles.Enabled()
}

// Verbosef prints an info line when verbose output is enabled
func (u *UI) Verbosef(format string, args ...any) {
	if !u.Verbose {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(u.ErrWriter, u.Styles.Info.Render(u.Styles.IconInfo+" "+msg))
}

// Successf prints a success line when verbose output is enabled
func (u *UI) Successf(format string, args ...any) {
	if !u.Verbose {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(u.ErrWriter, u.Styles.Success.Render(u.Styles.IconSuccess+" "+msg))
}

// Warnf always prints a warning line
func (u *UI) Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(u.ErrWriter, u.Styles.Warning.Render(u.Styles.IconWarning+" "+msg))
}

// Path renders a file path
func (u *UI) Path(p string) string {
	return u.Styles.Path.Render(p)
}
