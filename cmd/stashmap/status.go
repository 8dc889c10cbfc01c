package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

var (
	okSprint   = color.New(color.FgGreen).SprintFunc()
	warnSprint = color.New(color.FgYellow).SprintFunc()
	errSprint  = color.New(color.FgRed).SprintFunc()
)

// statusLine formats a one-line status with a colored glyph when stdout is a
// terminal. The fatih/color package already no-ops when NO_COLOR is set.
func statusLine(kind statusKind, message string) string {
	glyph, paint := "*", func(values ...interface{}) string { return values[0].(string) }
	switch kind {
	case statusOK:
		glyph, paint = "+", okSprint
	case statusWarn:
		glyph, paint = "!", warnSprint
	case statusError:
		glyph, paint = "x", errSprint
	}
	if !stdoutIsTerminal() {
		return glyph + " " + message
	}
	return paint(glyph) + " " + message
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
