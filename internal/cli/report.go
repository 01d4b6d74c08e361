package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gulievsadigg/carbon-emission/internal/config"
	"github.com/gulievsadigg/carbon-emission/internal/engine"
	"github.com/gulievsadigg/carbon-emission/internal/logging"
	"github.com/gulievsadigg/carbon-emission/internal/report"
	"github.com/gulievsadigg/carbon-emission/internal/tui"
)

const completionMessage = "The carbon footprint has been calculated and the report has been generated."

// reportFlags holds the flags of the report command.
type reportFlags struct {
	inputFlags

	formats       []string
	outputDir     string
	force         bool
	equivalencies bool
}

// NewReportCmd creates the report command, which collects input, computes
// the emission breakdown and writes one document per requested format.
func NewReportCmd() *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Collect figures and write a carbon footprint report",
		Long: `Collects the organization name and monthly figures, computes annual CO2
emissions for energy, waste and business travel, selects reduction advice and
writes the report as <org>_carbon_footprint_report.<ext> in the output directory.

Input comes from --input, from value flags, from an interactive form on a
terminal, or from line prompts on standard input.`,
		Example: `  # Interactive input, PDF output
  carbonreport report

  # Markdown and PDF into ./out, replacing existing files
  carbonreport report --input acme.yaml --format pdf,markdown --output-dir out --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, &flags)
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringSliceVarP(&flags.formats, "format", "f", nil,
		"output formats: pdf, markdown, json, text (default from config)")
	cmd.Flags().StringVarP(&flags.outputDir, "output-dir", "o", "", "directory for reports (default from config)")
	cmd.Flags().BoolVar(&flags.force, "force", false, "overwrite existing reports without asking")
	cmd.Flags().BoolVar(&flags.equivalencies, "equivalencies", true, "add an EPA equivalencies section")

	return cmd
}

func runReport(cmd *cobra.Command, flags *reportFlags) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	cfg := config.GetGlobalConfig()

	formats, err := cfg.OutputFormats()
	if len(flags.formats) > 0 {
		formats, err = report.ParseFormats(flags.formats)
	}
	if err != nil {
		return err
	}

	dir := config.GetOutputDirectory()
	if flags.outputDir != "" {
		dir = flags.outputDir
	}

	equivalencies := cfg.Output.Equivalencies
	if cmd.Flags().Changed("equivalencies") {
		equivalencies = flags.equivalencies
	}

	sink := report.Sink{
		Dir:       dir,
		Formats:   formats,
		Overwrite: flags.force,
		Logger:    log.With().Str("component", "report").Logger(),
	}
	if cmd.InOrStdin() == os.Stdin && tui.IsInteractive() {
		sink.Confirm = func(path string) bool {
			return ConfirmOverwrite(cmd.OutOrStdout(), cmd.InOrStdin(), path).Accepted
		}
	}

	eng := engine.New(cfg.Factors).WithEquivalencies(equivalencies)
	_, paths, err := eng.Generate(ctx, flags.provider(cmd), sink)
	if err != nil {
		return err
	}

	cmd.Println(completionMessage)
	for _, p := range paths {
		cmd.Printf("Report written to %s\n", p)
	}
	return nil
}
