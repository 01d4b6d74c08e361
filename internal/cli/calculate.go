package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/gulievsadigg/carbon-emission/internal/config"
	"github.com/gulievsadigg/carbon-emission/internal/engine"
	"github.com/gulievsadigg/carbon-emission/internal/report"
	"github.com/gulievsadigg/carbon-emission/internal/tui"
)

// Output formats of the calculate command.
const (
	outputTable = "table"
	outputJSON  = "json"

	defaultTerminalWidth = 80
)

// calculateFlags holds the flags of the calculate command.
type calculateFlags struct {
	inputFlags

	output        string
	equivalencies bool
}

// NewCalculateCmd creates the calculate command, which prints the breakdown
// and advice without writing a report file.
func NewCalculateCmd() *cobra.Command {
	var flags calculateFlags

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Print the emission breakdown and advice",
		Example: `  # Table on the terminal
  carbonreport calculate --input acme.yaml

  # JSON for scripts
  carbonreport calculate --org Acme --waste-kg 10 --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalculate(cmd, &flags)
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVar(&flags.output, "output", outputTable, "output format: table or json")
	cmd.Flags().BoolVar(&flags.equivalencies, "equivalencies", true, "include EPA equivalencies")

	return cmd
}

func runCalculate(cmd *cobra.Command, flags *calculateFlags) error {
	if flags.output != outputTable && flags.output != outputJSON {
		return fmt.Errorf("unsupported output format %q (use %s or %s)", flags.output, outputTable, outputJSON)
	}

	cfg := config.GetGlobalConfig()
	equivalencies := cfg.Output.Equivalencies
	if cmd.Flags().Changed("equivalencies") {
		equivalencies = flags.equivalencies
	}

	eng := engine.New(cfg.Factors).WithEquivalencies(equivalencies)
	res, err := eng.Calculate(cmd.Context(), flags.provider(cmd))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case flags.output == outputJSON:
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err

	case out == os.Stdout && tui.IsTTY(os.Stdout):
		_, err = fmt.Fprintln(out, tui.RenderEmissionSummary(res, tui.TerminalWidth(defaultTerminalWidth)))
		return err

	default:
		return report.TextRenderer{}.Render(out, engine.BuildReport(res, "", time.Time{}))
	}
}
