// Package config defines core configuration types for rhymesort.
// These types are pure data structures; loading and merging live in internal/configloader.
package config

import "github.com/yaklabco/rhymesort/pkg/lines"

const (
	// DefaultInput is the input file read when no path is given.
	DefaultInput = "input.txt"

	// DefaultOutput is the output file written when no path is given.
	DefaultOutput = "result.txt"

	// Stdio as an output path selects standard output.
	Stdio = "-"

	// DefaultMaxBytes is the default input size limit.
	DefaultMaxBytes = lines.DefaultMaxBytes

	// DefaultMaxLines is the default input line limit.
	DefaultMaxLines = lines.DefaultMaxLines
)

// ReportFormat specifies the format of the run report.
type ReportFormat string

const (
	FormatText ReportFormat = "text"
	FormatJSON ReportFormat = "json"
)

// IsValid returns true if the report format is known.
func (f ReportFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// BackupsConfig controls backup behavior when an existing output file is replaced.
type BackupsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Mode    string `yaml:"mode"` // "sidecar" or "none"
}

// Config is the root configuration structure for rhymesort.
type Config struct {
	// Input is the path of the text file to sort.
	Input string `yaml:"input"`

	// Output is the path of the result file, or "-" for standard output.
	Output string `yaml:"output"`

	// MaxBytes is the largest input accepted, in bytes.
	MaxBytes int64 `yaml:"max_bytes"`

	// MaxLines is the largest number of lines accepted.
	MaxLines int `yaml:"max_lines"`

	// Jobs controls sorting concurrency: 1 sorts the two views one after the
	// other, anything else sorts them in parallel.
	Jobs int `yaml:"jobs"`

	// AllowBinary disables the binary content check on the input.
	AllowBinary bool `yaml:"allow_binary"`

	// Backups configures backups of a previous output file.
	Backups BackupsConfig `yaml:"backups"`

	// CLI-level options (not persisted to config files).

	// Format specifies the run report format.
	Format ReportFormat `yaml:"-"`

	// Quiet suppresses the run report.
	Quiet bool `yaml:"-"`

	// NoBackups disables backup creation.
	NoBackups bool `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Input:    DefaultInput,
		Output:   DefaultOutput,
		MaxBytes: DefaultMaxBytes,
		MaxLines: DefaultMaxLines,
		Jobs:     0, // 0 means parallel
		Backups: BackupsConfig{
			Enabled: true,
			Mode:    "sidecar",
		},
		Format: FormatText,
	}
}

// Limits returns the extraction limits described by the configuration.
func (c *Config) Limits() lines.Limits {
	return lines.Limits{
		MaxBytes: c.MaxBytes,
		MaxLines: c.MaxLines,
	}
}

// BackupsEnabled reports whether a previous output should be backed up.
func (c *Config) BackupsEnabled() bool {
	return c.Backups.Enabled && !c.NoBackups && c.Backups.Mode != "none"
}
