package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// sectionDecoders maps each top-level YAML key to the Config section it
// updates. Keys missing here are ignored.
//
//nolint:gochecknoglobals // Fixed lookup table.
var sectionDecoders = map[string]func(*Config, *yaml.Node) error{
	"defaults": func(c *Config, n *yaml.Node) error { return overlaySection(n, &c.Defaults) },
	"output":   func(c *Config, n *yaml.Node) error { return overlaySection(n, &c.Output) },
	"logging":  func(c *Config, n *yaml.Node) error { return overlaySection(n, &c.Logging) },
	"cache":    func(c *Config, n *yaml.Node) error { return overlaySection(n, &c.Cache) },
	"catalog":  func(c *Config, n *yaml.Node) error { return overlaySection(n, &c.Catalog) },
}

// ShallowMergeYAML reads the YAML file at overlayPath onto target one
// top-level section at a time. Keys a section sets overwrite the target's
// values; keys and sections the file omits keep theirs. A section that
// fails to decode leaves the target's section untouched.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("config: nil target")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", overlayPath, err)
	}

	sections := map[string]yaml.Node{}
	if err := yaml.Unmarshal(data, &sections); err != nil {
		return fmt.Errorf("parsing config %s: %w", overlayPath, err)
	}

	for key, node := range sections {
		decode, ok := sectionDecoders[key]
		if !ok {
			continue
		}
		if err := decode(target, &node); err != nil {
			return fmt.Errorf("config section %q in %s: %w", key, overlayPath, err)
		}
	}
	return nil
}

// overlaySection decodes n over a copy of *dst and stores the result.
func overlaySection[T any](n *yaml.Node, dst *T) error {
	merged := *dst
	if err := n.Decode(&merged); err != nil {
		return err
	}
	*dst = merged
	return nil
}
