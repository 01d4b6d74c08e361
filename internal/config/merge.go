package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names.
const (
	keyVersion = "version"
	keyOutput  = "output"
	keyLogging = "logging"
	keyFactors = "factors"
	keyInput   = "input"
)

// MergeYAML loads a YAML file and applies it onto target.
//
// Only top-level keys present in the file are touched. Within a section,
// fields present in the file replace the target's values and absent fields
// keep them, so an overlay can change a single emission factor. Unknown
// top-level keys are an error, as are unknown fields inside a section.
func MergeYAML(target *Config, path string) error {
	if target == nil {
		return errors.New("nil target *Config in MergeYAML")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing config YAML from %s: %w", path, err)
	}

	// Empty or comment-only file: nothing to merge.
	if len(overlay) == 0 {
		return nil
	}

	for key, node := range overlay {
		if err = applySection(target, key, &node); err != nil {
			return fmt.Errorf("applying config section %q from %s: %w", key, path, err)
		}
	}

	return nil
}

// applySection decodes one top-level node onto the matching field.
func applySection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyVersion:
		return node.Decode(&target.Version)
	case keyOutput:
		return decodeStrict(node, &target.Output)
	case keyLogging:
		return decodeStrict(node, &target.Logging)
	case keyFactors:
		return decodeStrict(node, &target.Factors)
	case keyInput:
		return decodeStrict(node, &target.Input)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
}

// decodeStrict decodes node onto v, rejecting unknown fields.
func decodeStrict(node *yaml.Node, v any) error {
	data, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(v)
}
