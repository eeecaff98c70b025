package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kweiss/xwinctl/internal/model"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// ListResult is the top-level output of the `list` command.
type ListResult struct {
	Display string         `yaml:"display,omitempty" json:"display,omitempty"`
	TS      int64          `yaml:"ts"                json:"ts"`
	Windows []model.Window `yaml:"windows"           json:"windows"`
}

// ActionResult reports a geometry or visibility change applied to every
// window whose title matched the pattern.
type ActionResult struct {
	OK      bool           `yaml:"ok"                json:"ok"`
	Action  string         `yaml:"action"            json:"action"`
	Pattern string         `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Windows []model.Window `yaml:"windows"           json:"windows"`
}

// WaitResult is the output of the wait command.
type WaitResult struct {
	OK       bool   `yaml:"ok"                  json:"ok"`
	Action   string `yaml:"action"              json:"action"`
	Pattern  string `yaml:"pattern"             json:"pattern"`
	Elapsed  string `yaml:"elapsed"             json:"elapsed"`
	TimedOut bool   `yaml:"timed_out,omitempty" json:"timed_out,omitempty"`
}

// ScreenshotResult is printed when a capture is written to a file.
type ScreenshotResult struct {
	OK     bool   `yaml:"ok"     json:"ok"`
	Action string `yaml:"action" json:"action"`
	Window string `yaml:"window" json:"window"`
	File   string `yaml:"file"   json:"file"`
	Bytes  int    `yaml:"bytes"  json:"bytes"`
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(v)
		}
		return PrintJSON(v)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v to stdout as compact single-line JSON.
func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintPrettyJSON serializes v to stdout as indented JSON.
func PrintPrettyJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintYAML serializes v to stdout as YAML.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(os.Stdout)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}

// MarshalYAML serializes v to a YAML string, falling back to a terse
// key: value dump when encoding fails. Used by the MCP tool handlers.
func MarshalYAML(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}
