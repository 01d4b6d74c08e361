package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PromptResult contains the result of a user prompt interaction.
type PromptResult struct {
	// Accepted is true if the user accepted the prompt (typed "y" or "yes").
	Accepted bool
	// Cancelled is true if reading the answer failed.
	Cancelled bool
}

// ConfirmOverwrite asks whether an existing report file may be replaced.
//
// The prompt defaults to "No" when the user presses Enter without input or
// closes the input. Valid inputs: "y" or "yes" in any case; anything else
// declines. Callers decide whether the session is interactive.
func ConfirmOverwrite(writer io.Writer, reader io.Reader, path string) PromptResult {
	_, _ = fmt.Fprintf(writer, "? Report %s already exists. Overwrite? [y/N] ", path)

	scanner := bufio.NewScanner(reader)
	if !scanner.Scan() {
		if scanner.Err() != nil {
			return PromptResult{Cancelled: true}
		}
		// EOF without error, e.g. Ctrl+D.
		return PromptResult{Accepted: false}
	}

	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return PromptResult{Accepted: true}
	default:
		return PromptResult{Accepted: false}
	}
}
