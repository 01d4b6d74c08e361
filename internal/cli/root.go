// Package cli wires the carbonreport cobra commands.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gulievsadigg/carbon-emission/internal/config"
	"github.com/gulievsadigg/carbon-emission/internal/logging"
	"github.com/gulievsadigg/carbon-emission/pkg/version"
)

// annotationLenientConfig marks commands that must run even when the
// configuration files are invalid, such as config init and validate.
const annotationLenientConfig = "carbonreport/lenient-config"

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the carbonreport CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit environment
// lookup for testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	var (
		logResult  *logging.LogPathResult
		configPath string
	)

	cmd := &cobra.Command{
		Use:           "carbonreport",
		Short:         "Carbon footprint calculator and report generator",
		Long:          "carbonreport estimates an organization's annual CO2 emissions from energy, waste and travel figures and writes a report with reduction advice.",
		Version:       displayVersion(ver),
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath, lookupEnv)
			if err != nil {
				if _, lenient := cmd.Annotations[annotationLenientConfig]; !lenient {
					return err
				}
				cfg = config.NewWithEnv(lookupEnv)
			}
			config.SetGlobalConfig(cfg)

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&configPath, "config", "",
		"additional config file merged over ~/.carbonreport/config.yaml")

	cmd.AddCommand(NewReportCmd(), NewCalculateCmd(), newConfigCmd(lookupEnv))

	return cmd
}

// displayVersion marks builds that are not tagged releases.
func displayVersion(ver string) string {
	if version.IsRelease(ver) {
		return ver
	}
	return ver + " (dev build)"
}

const rootCmdExample = `  # Answer the questions interactively and write a PDF report
  carbonreport report

  # Generate Markdown and JSON reports from an input file
  carbonreport report --input acme.yaml --format markdown,json

  # Pass every figure as a flag
  carbonreport report --org Acme --electricity-bill 100 --gas-bill 50 --waste-kg 200 \
    --recycle-percent 50 --travel-km-per-year 10000 --fuel-efficiency-l-per-100km 8

  # Print the breakdown without writing a document
  carbonreport calculate --input acme.yaml --output json

  # Initialize configuration
  carbonreport config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd(lookupEnv func(string) (string, bool)) *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(lookupEnv), NewConfigShowCmd(), NewConfigValidateCmd(lookupEnv))
	return cmd
}
