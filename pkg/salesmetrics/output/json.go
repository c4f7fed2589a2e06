// Package output renders analysis results as JSON, YAML or text.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

// Format is an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON, FormatYAML:
		return Format(s), nil
	}
	return "", fmt.Errorf("invalid format: %s (must be text, json, or yaml)", s)
}

// ToJSON serializes v as JSON.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ToYAML serializes v as YAML.
func ToYAML(v interface{}) ([]byte, error) {
	return yaml.Marshal(v)
}

// Write encodes v to w. For FormatText, text is called instead.
func Write(w io.Writer, format Format, pretty bool, v interface{}, text func(io.Writer) error) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = ToJSON(v, pretty)
		data = append(data, '\n')
	case FormatYAML:
		data, err = ToYAML(v)
	default:
		return text(w)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = w.Write(data)
	return err
}
