package ui

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// stderrColor follows stderr rather than stdout, since diagnostics go there.
var stderrColor = os.Getenv("NO_COLOR") == "" && os.Getenv("TERM") != "dumb" &&
	(isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()))

// Error formats a diagnostic for stderr.
func Error(text string) string { return paint("❌ "+text, stderrColor, color.FgHiRed) }

// paint renders text with attr, or returns it untouched when enabled is false.
func paint(text string, enabled bool, attr ...color.Attribute) string {
	c := color.New(attr...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(text)
}
