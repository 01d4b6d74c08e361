// Command carbonreport estimates an organization's annual carbon footprint
// and writes a report with reduction advice.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gulievsadigg/carbon-emission/internal/cli"
	"github.com/gulievsadigg/carbon-emission/internal/input"
	"github.com/gulievsadigg/carbon-emission/pkg/version"
)

// Exit codes.
const (
	exitOK           = 0
	exitFailure      = 1
	exitInvalidInput = 2
)

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	return root.ExecuteContext(ctx)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(extractExitCode(err))
	}
}

// extractExitCode maps invalid operator input to exit code 2 and every
// other failure to 1.
func extractExitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, input.ErrInvalidInput):
		return exitInvalidInput
	default:
		return exitFailure
	}
}
