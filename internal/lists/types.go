package lists

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"signal-weaver/internal/common"
)

// File describes the identifier collections fed to the matcher.
type File struct {
	// Hint is the shared substring (bus or interface name) both sides may
	// embed in different spellings.
	Hint string `yaml:"hint,omitempty"`

	// Bus holds the bus-interface signal names (group A).
	Bus StringList `yaml:"bus,omitempty"`

	// Ports holds the module port names (group B).
	Ports StringList `yaml:"ports,omitempty"`

	// MinLen is the minimum marker length for extraction. Defaults to 2.
	MinLen int `yaml:"minLen,omitempty"`

	// Threshold is the marker frequency threshold. Defaults to 2.
	Threshold int `yaml:"threshold,omitempty"`
}

// StringList decodes either a YAML sequence of identifiers or a literal
// block scalar holding one identifier per line. Block scalars are dedented
// first, so they can be indented naturally under their key.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}

		*l = items

		return nil

	case yaml.ScalarNode:
		var text string
		if err := node.Decode(&text); err != nil {
			return err
		}

		*l = splitLines(common.Dedent(text))

		return nil

	default:
		return fmt.Errorf("line %d: identifier list must be a sequence or a block scalar", node.Line)
	}
}

func splitLines(text string) []string {
	var out []string

	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}
