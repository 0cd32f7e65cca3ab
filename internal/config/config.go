package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/geange/fsa"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format is a serialization format for automaton descriptions.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts "yaml", "yml" and "json", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q", s)
	}
}

// FormatFromPath picks the format from the file extension, defaulting to YAML.
func FormatFromPath(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return FormatJSON
	}
	return FormatYAML
}

// Load reads an automaton description (YAML or JSON) from path.
func Load(path string) (fsa.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fsa.Config{}, fmt.Errorf("failed to read automaton config: %w", err)
	}
	cfg, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return fsa.Config{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// LoadAutomaton reads and validates the automaton described at path.
func LoadAutomaton(path string) (*fsa.Automaton, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	a, err := fsa.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return a, nil
}

// Parse decodes a YAML or JSON document.
func Parse(data []byte, format Format) (fsa.Config, error) {
	var raw map[string]any
	switch format {
	case FormatJSON:
		// Numbers keep their literal text.
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return fsa.Config{}, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fsa.Config{}, err
		}
	default:
		return fsa.Config{}, fmt.Errorf("unknown format %q", format)
	}
	if raw == nil {
		return fsa.Config{}, fmt.Errorf("document is empty")
	}
	return Decode(raw)
}

// Decode maps a loosely typed document onto a Config. Integers are converted to
// strings, so unquoted YAML such as `states: [0, 1]` is accepted. Booleans and
// floats are rejected since their string form does not round-trip (`1.50` would
// become "1.5"). Unknown keys are rejected.
func Decode(raw map[string]any) (fsa.Config, error) {
	var cfg fsa.Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		DecodeHook:       rejectLossyScalars,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return fsa.Config{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return fsa.Config{}, err
	}
	return cfg, nil
}

// rejectLossyScalars fails on booleans and floats decoded into string fields.
func rejectLossyScalars(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}
	switch from.Kind() {
	case reflect.Bool, reflect.Float32, reflect.Float64:
		return nil, fmt.Errorf("%v is not a valid id or symbol, quote it", data)
	}
	return data, nil
}

// Write encodes cfg in the given format.
func Write(w io.Writer, cfg fsa.Config, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
