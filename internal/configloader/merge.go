package configloader

import (
	"slices"

	"github.com/yaklabco/rhymesort/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
// A value in override replaces base when it is set (a non-empty string, a
// non-zero number or true) or when its flag name is listed in explicit, which
// lets command-line flags set zero and false. Files and the environment are
// decoded on top of the running config instead, so they can also set false.
func merge(base, override *config.Config, explicit ...string) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base
	set := func(flag string, nonZero bool) bool {
		return nonZero || slices.Contains(explicit, flag)
	}

	if set("output", override.Output != "") {
		result.Output = override.Output
	}
	if override.Input != "" {
		result.Input = override.Input
	}
	if set("max-bytes", override.MaxBytes != 0) {
		result.MaxBytes = override.MaxBytes
	}
	if set("max-lines", override.MaxLines != 0) {
		result.MaxLines = override.MaxLines
	}
	if set("jobs", override.Jobs != 0) {
		result.Jobs = override.Jobs
	}
	if set("format", override.Format != "") {
		result.Format = override.Format
	}

	if set("allow-binary", override.AllowBinary) {
		result.AllowBinary = override.AllowBinary
	}
	if set("quiet", override.Quiet) {
		result.Quiet = override.Quiet
	}
	if set("no-backups", override.NoBackups) {
		result.NoBackups = override.NoBackups
	}

	if override.Backups.Mode != "" {
		result.Backups.Mode = override.Backups.Mode
	}
	if override.Backups.Enabled {
		result.Backups.Enabled = true
	}

	return &result
}
