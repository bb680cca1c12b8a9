package lists

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"signal-weaver/internal/common"
	"signal-weaver/utils"
)

// Extraction parameter bounds accepted from input files.
const (
	defaultMinLen    = 2
	defaultThreshold = 2
	maxMinLen        = 64
)

// LoadFile loads and parses a YAML identifier-list file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lists file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse lists file %s: %w", path, err)
	}

	return f, nil
}

// Parse parses YAML data into a File, applies defaults, and validates it.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse lists YAML: %w", err)
	}

	applyDefaults(&f)

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.MinLen == 0 {
		f.MinLen = defaultMinLen
	}

	if f.Threshold == 0 {
		f.Threshold = defaultThreshold
	}
}

// Validate rejects contract violations: non-positive extraction parameters
// are programming errors on the caller's side, not degradable input.
func (f *File) Validate() error {
	if !utils.IsInRange(1, f.MinLen, maxMinLen) {
		return fmt.Errorf("minLen must be between 1 and %d, got %d", maxMinLen, f.MinLen)
	}

	if !utils.IsPositive(f.Threshold) {
		return fmt.Errorf("threshold must be at least 1, got %d", f.Threshold)
	}

	return nil
}

// IsEmpty reports whether the file carries no identifiers at all.
func (f *File) IsEmpty() bool {
	return common.IsEmpty(f.Bus) && common.IsEmpty(f.Ports)
}

// ReadLines reads a plain-text identifier file: one identifier per line,
// blank lines and #-comments skipped.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read identifier file %s: %w", path, err)
	}

	var out []string

	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		out = append(out, trimmed)
	}

	return out, nil
}
