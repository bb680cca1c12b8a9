package diagnostic

import (
	"fmt"
	"strings"

	"signal-weaver/internal/common"
)

// Diagnostics holds all diagnostic information from a matching run.
type Diagnostics struct {
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Identifier names the signal or port this relates to (if any).
	Identifier string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return common.UnknownStr
	}
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, identifier string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:   SeverityWarning,
		Code:       code,
		Message:    message,
		Identifier: identifier,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, identifier string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:   SeverityInfo,
		Code:       code,
		Message:    message,
		Identifier: identifier,
	})
}

// HasWarnings returns true if any warning was recorded.
func (d *Diagnostics) HasWarnings() bool {
	return len(d.Warnings) > 0
}

// Format renders all diagnostics as a multi-line string, warnings first.
func (d *Diagnostics) Format() string {
	var sb strings.Builder

	for _, diag := range d.Warnings {
		writeDiagnostic(&sb, diag)
	}

	for _, diag := range d.Infos {
		writeDiagnostic(&sb, diag)
	}

	return sb.String()
}

func writeDiagnostic(sb *strings.Builder, diag Diagnostic) {
	if diag.Identifier != "" {
		fmt.Fprintf(sb, "%s [%s] %s: %s\n", diag.Severity, diag.Code, diag.Identifier, diag.Message)

		return
	}

	fmt.Fprintf(sb, "%s [%s] %s\n", diag.Severity, diag.Code, diag.Message)
}
