package configloader

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/yaklabco/rhymesort/pkg/config"
)

// ErrInvalidConfig is matched by every ValidationError.
var ErrInvalidConfig = errors.New("invalid configuration")

// ValidationError is a rejected setting. Field is a YAML key such as
// "backups.mode" or an environment variable name.
type ValidationError struct {
	Field    string
	Value    any
	Message  string
	FilePath string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{e.FilePath, e.Field, e.Message} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ": ")
}

// Is reports whether target is ErrInvalidConfig.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// Validate checks the resolved configuration. Every rejected setting is
// joined into err; limits above the defaults only produce warnings.
func Validate(cfg *config.Config) (warnings []string, err error) {
	var errs []error
	reject := func(field string, value any, format string, args ...any) {
		errs = append(errs, &ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
	}

	switch {
	case cfg.Input == "":
		reject("input", cfg.Input, "input path must not be empty")
	case cfg.Output == "":
		reject("output", cfg.Output, "output path must not be empty")
	case cfg.Output != config.Stdio && samePath(cfg.Input, cfg.Output):
		reject("output", cfg.Output, "output %q would overwrite the input", cfg.Output)
	}

	if cfg.MaxBytes <= 0 {
		reject("max_bytes", cfg.MaxBytes, "max_bytes must be > 0")
	} else if cfg.MaxBytes > config.DefaultMaxBytes {
		warnings = append(warnings, fmt.Sprintf(
			"max_bytes %d exceeds the default of %d; large inputs are held in memory",
			cfg.MaxBytes, config.DefaultMaxBytes))
	}

	if cfg.MaxLines <= 0 {
		reject("max_lines", cfg.MaxLines, "max_lines must be > 0")
	} else if cfg.MaxLines > config.DefaultMaxLines {
		warnings = append(warnings, fmt.Sprintf(
			"max_lines %d exceeds the default of %d", cfg.MaxLines, config.DefaultMaxLines))
	}

	if cfg.Jobs < 0 {
		reject("jobs", cfg.Jobs, "jobs must be >= 0 (1 means sequential)")
	}
	if cfg.Format != "" && !cfg.Format.IsValid() {
		reject("format", cfg.Format, "invalid format %q; must be one of: text, json", cfg.Format)
	}
	if mode := cfg.Backups.Mode; mode != "" && !slices.Contains([]string{"sidecar", "none"}, mode) {
		reject("backups.mode", mode, "invalid backup mode %q; must be one of: sidecar, none", mode)
	}

	return warnings, errors.Join(errs...)
}

// samePath reports whether two paths name the same file after cleaning.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
