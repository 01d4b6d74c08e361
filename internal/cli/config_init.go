package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gulievsadigg/carbon-emission/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd(lookupEnv func(string) (string, bool)) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates ~/.carbonreport/config.yaml (or $CARBONREPORT_HOME/config.yaml)
holding the default output, logging, emission factor and input settings.`,
		Example: `  # Create configuration
  carbonreport config init

  # Create configuration, overwriting existing
  carbonreport config init --force`,
		Annotations: map[string]string{annotationLenientConfig: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initGlobalConfig(cmd, lookupEnv, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

// initGlobalConfig writes the default configuration file.
func initGlobalConfig(cmd *cobra.Command, lookupEnv func(string) (string, bool), force bool) error {
	cfg := config.NewWithEnv(lookupEnv)
	if cfg.ConfigPath() == "" {
		return errors.New("cannot determine configuration directory")
	}

	if !force {
		if _, err := os.Stat(cfg.ConfigPath()); err == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", cfg.ConfigPath(), err)
		}
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", cfg.ConfigPath())

	return nil
}
