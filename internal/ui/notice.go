package ui

import (
	"io"

	"github.com/fatih/color"

	"gastos/internal/core"
)

// Colours are dropped automatically when stdout is not a terminal or
// NO_COLOR is set.

func Success(w io.Writer, format string, a ...any) {
	notice(w, successColor, "✔ ", format, a...)
}

func Failure(w io.Writer, format string, a ...any) {
	notice(w, failureColor, "✘ ", format, a...)
}

func Info(w io.Writer, format string, a ...any) {
	notice(w, infoColor, "ℹ ", format, a...)
}

// Alert prints a triggered spending alert.
func Alert(w io.Writer, a core.Alert) {
	notice(w, alertColor, "⚠ ", "ALERTA %s: %s", a.Kind.Label(), a.Message)
}

func notice(w io.Writer, c *color.Color, prefix, format string, a ...any) {
	c.Fprintf(w, prefix+format+"\n", a...)
}
