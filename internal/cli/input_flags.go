package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gulievsadigg/carbon-emission/internal/config"
	"github.com/gulievsadigg/carbon-emission/internal/emissions"
	"github.com/gulievsadigg/carbon-emission/internal/input"
	"github.com/gulievsadigg/carbon-emission/internal/tui"
)

// inputFlags holds the flags shared by commands that collect input.
type inputFlags struct {
	org         string
	inputFile   string
	noTUI       bool
	maxAttempts int
	values      map[string]*float64
}

// bind registers the input flags on cmd. Each record field gets a flag
// named after its key with dashes, e.g. --gas-bill.
func (f *inputFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.org, "org", "", "organization name")
	cmd.Flags().StringVarP(&f.inputFile, "input", "i", "", "read figures from a YAML or JSON file")
	cmd.Flags().BoolVar(&f.noTUI, "no-tui", false, "use plain line prompts even on a terminal")
	cmd.Flags().IntVar(&f.maxAttempts, "max-attempts", 0,
		"invalid answers allowed per prompt before giving up (0 = config value, unlimited by default)")

	f.values = make(map[string]*float64)
	for _, field := range input.Fields() {
		v := new(float64)
		f.values[field.Key] = v
		cmd.Flags().Float64Var(v, flagName(field.Key), 0, strings.TrimSuffix(strings.TrimSpace(field.Prompt), ":"))
	}
	cmd.MarkFlagsMutuallyExclusive("input", "no-tui")
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// anyValueSet reports whether at least one figure was passed as a flag.
func (f *inputFlags) anyValueSet(cmd *cobra.Command) bool {
	for _, field := range input.Fields() {
		if cmd.Flags().Changed(flagName(field.Key)) {
			return true
		}
	}
	return false
}

func (f *inputFlags) record() emissions.InputRecord {
	var r emissions.InputRecord
	for _, field := range input.Fields() {
		field.Set(&r, *f.values[field.Key])
	}
	return r
}

// provider picks the input source: an input file, value flags, the
// bubbletea form on an interactive terminal, or plain line prompts.
func (f *inputFlags) provider(cmd *cobra.Command) input.Provider {
	switch {
	case f.inputFile != "":
		return input.WithOrganization(input.NewFileProvider(f.inputFile), f.org)

	case f.anyValueSet(cmd):
		return input.StaticProvider{Org: f.org, Values: f.record()}

	case !f.noTUI && cmd.InOrStdin() == os.Stdin && tui.IsInteractive():
		return tui.NewFormProvider(f.org, nil, nil)

	default:
		p := input.NewPromptProvider(cmd.InOrStdin(), cmd.OutOrStdout())
		p.MaxAttempts = config.GetGlobalConfig().Input.MaxAttempts
		if f.maxAttempts > 0 {
			p.MaxAttempts = f.maxAttempts
		}
		return input.WithOrganization(p, f.org)
	}
}
