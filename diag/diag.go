// Package diag provides diagnostics reported while parsing JavaScript.
package diag

import (
	"fmt"

	"github.com/dhamidi/jscst/syntax"
)

// Severity indicates the severity of a diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Stable diagnostic codes.
const (
	CodeExpected          = "JS0001" // a required token or node is missing
	CodeUnexpected        = "JS0002" // input that no rule accepts
	CodeInvalidAssignment = "JS0003"
	CodeUndefinedLabel    = "JS0004"
	CodeInvalidPattern    = "JS0005"
)

// Diagnostic is a message about a byte range of the source.
type Diagnostic struct {
	Code     string           `json:"code"`
	Severity Severity         `json:"severity"`
	Message  string           `json:"message"`
	Range    syntax.TextRange `json:"range"`
	Label    string           `json:"label,omitempty"` // attached to the primary range
	Hint     string           `json:"hint,omitempty"`
}

func (d Diagnostic) String() string {
	msg := fmt.Sprintf("[%s] %s at %s: %s", d.Code, d.Severity, d.Range, d.Message)
	if d.Hint != "" {
		msg += " (hint: " + d.Hint + ")"
	}
	return msg
}

// Errorf creates an error diagnostic at the given range.
func Errorf(code string, r syntax.TextRange, format string, args ...any) Diagnostic {
	return Diagnostic{
		Code:     code,
		Severity: Error,
		Message:  fmt.Sprintf(format, args...),
		Range:    r,
	}
}

// Warningf creates a warning diagnostic at the given range.
func Warningf(code string, r syntax.TextRange, format string, args ...any) Diagnostic {
	return Diagnostic{
		Code:     code,
		Severity: Warning,
		Message:  fmt.Sprintf(format, args...),
		Range:    r,
	}
}

func (d Diagnostic) WithLabel(label string) Diagnostic {
	d.Label = label
	return d
}

func (d Diagnostic) WithHint(hint string) Diagnostic {
	d.Hint = hint
	return d
}

// HasErrors reports whether any diagnostic is an error.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == Error {
			return true
		}
	}
	return false
}
