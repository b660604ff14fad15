// FILE: lixenwraith/ncl/loader.go
package ncl

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a TOML, JSON or YAML file into a record builder. The format
// comes from the extension, or from the content when the extension is unknown.
// A missing file returns ErrNotFound.
func LoadFile(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
	}

	m, err := parseData(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse '%s': %w", path, err)
	}

	r, err := FromMap(m)
	if err != nil {
		return nil, fmt.Errorf("failed to load '%s': %w", path, err)
	}
	return r, nil
}

// LoadBytes is LoadFile for data already in memory. format must be toml,
// json or yaml; an empty format is detected from the content.
func LoadBytes(data []byte, format string) (*Record, error) {
	if format == "" {
		format = detectFormatFromContent(data)
	}
	m, err := parseData(data, format)
	if err != nil {
		return nil, err
	}
	return FromMap(m)
}

func parseData(data []byte, format string) (map[string]any, error) {
	m := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("invalid TOML: %w", err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber() // Preserve number precision
		if err := decoder.Decode(&m); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: cannot read %q input", ErrUnsupportedFormat, format)
	}
	return normalize(m).(map[string]any), nil
}

// normalize turns map[any]any, which YAML produces for non-string keys, into
// map[string]any all the way down.
func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, el := range x {
			x[k] = normalize(el)
		}
		return x
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, el := range x {
			out[fmt.Sprint(k)] = normalize(el)
		}
		return out
	case []any:
		for i, el := range x {
			x[i] = normalize(el)
		}
		return x
	case []map[string]any:
		out := make([]any, len(x))
		for i, el := range x {
			out[i] = normalize(el)
		}
		return out
	}
	return v
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	}
	return ""
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) string {
	// Try JSON first (strict format)
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	// YAML is a superset of JSON, so it comes second
	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	return ""
}
