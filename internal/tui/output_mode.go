package tui

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// OutputMode selects how the page is presented.
type OutputMode int

const (
	// OutputModePlain prints unstyled text.
	OutputModePlain OutputMode = iota
	// OutputModeStyled prints the static page with colors and borders.
	OutputModeStyled
	// OutputModeInteractive runs the full-screen program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModeInteractive:
		return "interactive"
	case OutputModeStyled:
		return "styled"
	default:
		return "plain"
	}
}

// DetectOutputMode picks a mode from the flags, the environment and whether
// stdout is a terminal. Explicit flags win; NO_COLOR, TERM=dumb and CI
// degrade the mode.
func DetectOutputMode(forcePlain, noColor, ci bool) OutputMode {
	return detectOutputMode(forcePlain, noColor, ci, term.IsTerminal(int(os.Stdout.Fd())), os.Getenv)
}

func detectOutputMode(forcePlain, noColor, ci, isTTY bool, getenv func(string) string) OutputMode {
	if forcePlain || !isTTY || strings.EqualFold(getenv("TERM"), "dumb") {
		return OutputModePlain
	}
	if noColor || getenv("NO_COLOR") != "" {
		return OutputModePlain
	}
	if ci || getenv("CI") != "" {
		return OutputModeStyled
	}
	return OutputModeInteractive
}
