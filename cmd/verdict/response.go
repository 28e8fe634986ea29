package main

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"verdict/internal/output"
	"verdict/internal/version"
)

// OutputFormat selects how command facts are rendered.
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatHuman OutputFormat = "human"
	FormatYAML  OutputFormat = "yaml"
)

// Response is the common wrapper for verdict command output in structured
// formats.
type Response struct {
	VerdictVersion string `json:"verdictVersion" yaml:"verdictVersion"`
	Facts          any    `json:"facts" yaml:"facts"`
	DurationMs     int64  `json:"durationMs" yaml:"durationMs"`
}

// NewResponse wraps facts with version and timing information.
func NewResponse(facts any, durationMs int64) *Response {
	return &Response{
		VerdictVersion: version.Version,
		Facts:          facts,
		DurationMs:     durationMs,
	}
}

// FormatResponse renders v in the requested structured format. JSON output
// is deterministic: identical facts produce byte-identical text.
func FormatResponse(v any, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		data, err := output.DeterministicEncodeIndented(v, "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported output format %q", format)
	}
}
