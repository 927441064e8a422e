package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/rhymesort/pkg/config"
)

const envVarPrefix = "RHYMESORT_"

// envVar binds RHYMESORT_<suffix> to one config field.
type envVar struct {
	suffix string
	help   string
	apply  func(cfg *config.Config, value string) error
}

//nolint:gochecknoglobals // read-only lookup table
var envVars = []envVar{
	{"INPUT", "input file path", text(func(c *config.Config, v string) { c.Input = v })},
	{"OUTPUT", "output file path, or - for standard output", text(func(c *config.Config, v string) { c.Output = v })},
	{"MAX_BYTES", "largest accepted input in bytes", integer(func(c *config.Config, v int64) { c.MaxBytes = v })},
	{"MAX_LINES", "largest accepted number of lines", integer(func(c *config.Config, v int64) { c.MaxLines = int(v) })},
	{"JOBS", "1 sorts sequentially, 0 in parallel", integer(func(c *config.Config, v int64) { c.Jobs = int(v) })},
	{"ALLOW_BINARY", "skip the binary content check", boolean(func(c *config.Config, v bool) { c.AllowBinary = v })},
	{"FORMAT", "report format: text or json", text(func(c *config.Config, v string) { c.Format = config.ReportFormat(v) })},
	{"BACKUPS_ENABLED", "back up a previous output file", boolean(func(c *config.Config, v bool) { c.Backups.Enabled = v })},
	{"BACKUPS_MODE", "backup mode: sidecar or none", text(func(c *config.Config, v string) { c.Backups.Mode = v })},
	{"NO_BACKUPS", "disable backups", boolean(func(c *config.Config, v bool) { c.NoBackups = v })},
}

// LoadFromEnv applies the non-empty RHYMESORT_* variables to cfg. A value
// that does not parse is reported as a ValidationError naming the variable.
func LoadFromEnv(cfg *config.Config) error {
	for _, ev := range envVars {
		name := envVarPrefix + ev.suffix
		value := os.Getenv(name)
		if value == "" {
			continue
		}
		if err := ev.apply(cfg, value); err != nil {
			return &ValidationError{Field: name, Value: value, Message: err.Error()}
		}
	}
	return nil
}

// EnvHelp lists the supported environment variables, one per line.
func EnvHelp() string {
	var b strings.Builder
	for _, ev := range envVars {
		fmt.Fprintf(&b, "  %-28s %s\n", envVarPrefix+ev.suffix, ev.help)
	}
	return b.String()
}

func text(set func(*config.Config, string)) func(*config.Config, string) error {
	return func(cfg *config.Config, value string) error {
		set(cfg, value)
		return nil
	}
}

func boolean(set func(*config.Config, bool)) func(*config.Config, string) error {
	return func(cfg *config.Config, value string) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q (expected true/false/1/0)", value)
		}
		set(cfg, b)
		return nil
	}
}

func integer(set func(*config.Config, int64)) func(*config.Config, string) error {
	return func(cfg *config.Config, value string) error {
		i, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer %q", value)
		}
		set(cfg, i)
		return nil
	}
}
