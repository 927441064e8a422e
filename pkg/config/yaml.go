package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ToYAML encodes the file-backed settings of c with two-space indentation.
// CLI-only fields are left out.
func (c *Config) ToYAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// FromYAML parses a config file. Missing keys stay at their zero value.
func FromYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := cfg.MergeYAML(data); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MergeYAML decodes data on top of c: keys present in data replace the
// current values, so a file can set false or zero. Unknown keys are an error.
func (c *Config) MergeYAML(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	// An empty or comment-only document yields io.EOF.
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse yaml: %w", err)
	}
	return nil
}
