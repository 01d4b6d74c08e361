package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gulievsadigg/carbon-emission/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd(lookupEnv func(string) (string, bool)) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates ~/.carbonreport/config.yaml, the optional --config overlay and
CARBONREPORT_* environment overrides.

This includes:
- YAML syntax and unknown keys
- Config version compatibility
- Output format names
- Log level and format
- Emission factors (finite, non-negative)
- Input attempt limit`,
		Example: `  # Validate current configuration
  carbonreport config validate

  # Validate with an overlay and show the effective values
  carbonreport config validate --config team.yaml --verbose`,
		Annotations: map[string]string{annotationLenientConfig: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			overlay, _ := cmd.Flags().GetString("config")
			return runConfigValidate(cmd, overlay, lookupEnv, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate loads every configuration layer and reports problems.
func runConfigValidate(
	cmd *cobra.Command,
	overlay string,
	lookupEnv func(string) (string, bool),
	verbose bool,
) error {
	cfg, err := config.Load(overlay, lookupEnv)
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints the effective settings.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Printf("Config file:      %s\n", cfg.ConfigPath())
	cmd.Printf("Version:          %s\n", cfg.Version)
	cmd.Printf("Output directory: %s\n", cfg.Output.Directory)
	cmd.Printf("Formats:          %s\n", strings.Join(cfg.Output.Formats, ", "))
	cmd.Printf("Equivalencies:    %t\n", cfg.Output.Equivalencies)
	cmd.Printf("Log level:        %s\n", cfg.Logging.Level)
	cmd.Printf("Factors:          electricity=%g gas=%g fuel_bill=%g waste=%g travel=%g\n",
		cfg.Factors.Electricity, cfg.Factors.Gas, cfg.Factors.FuelBill, cfg.Factors.Waste, cfg.Factors.Travel)
}
