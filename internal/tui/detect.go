package tui

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// IsInteractive reports whether both stdin and stdout are terminals, which
// is required before starting a bubbletea program or asking questions.
func IsInteractive() bool {
	return IsTTY(os.Stdin) && IsTTY(os.Stdout)
}

// TerminalWidth returns the width of stdout, or fallback when it is not a
// terminal.
func TerminalWidth(fallback int) int {
	if !IsTTY(os.Stdout) {
		return fallback
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}
