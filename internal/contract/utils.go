package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Uniformity label constants.
const (
	UniformValue   = "Uniform"   // Field observed with exactly one type
	MixedValue     = "Mixed"     // Field observed with two types
	DivergentValue = "Divergent" // Field observed with three or more types
)

// Color variables for console output.
var (
	UniformColor   = color.New(color.FgGreen)           // uniformColor marks a stable field.
	MixedColor     = color.New(color.FgYellow)          // mixedColor marks a field with two competing types.
	DivergentColor = color.New(color.FgRed, color.Bold) // divergentColor marks a field drifting across many types.
)

// GetPlainLabel returns a plain text label describing how uniform a field's
// observed types are. This is the core logic used for CSV, JSON, and table
// printing.
func GetPlainLabel(tagCount int) string {
	switch {
	case tagCount <= 1:
		return UniformValue
	case tagCount == 2:
		return MixedValue
	default:
		return DivergentValue
	}
}

// GetColorLabel returns a colored label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the
// appropriate color.
func GetColorLabel(tagCount int) string {
	text := GetPlainLabel(tagCount)

	switch text {
	case UniformValue:
		return UniformColor.Sprint(text)
	case MixedValue:
		return MixedColor.Sprint(text)
	default: // "Divergent"
		return DivergentColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the
// provided file path. It returns os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncateField truncates a field name to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 so there is space for both the "..." and at least one
// character of content.
func TruncateField(field string, maxWidth int) string {
	runes := []rune(field)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return field
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
