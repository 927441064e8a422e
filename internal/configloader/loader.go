// Package configloader resolves the rhymesort configuration from defaults,
// config files, RHYMESORT_* environment variables and command-line flags.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/rhymesort/pkg/config"
)

// LoadOptions controls which sources Load consults.
type LoadOptions struct {
	// WorkingDir starts the project config search; the process working
	// directory when empty.
	WorkingDir string

	// ExplicitPath is the --config file, applied above discovered files.
	ExplicitPath string

	IgnoreSystemConfig bool
	IgnoreUserConfig   bool
	IgnoreEnv          bool

	// CLIConfig holds values from command-line flags, the highest layer.
	CLIConfig *config.Config

	// CLISet names the flags given on the command line. Their values in
	// CLIConfig apply even when zero or false.
	CLISet []string
}

// LoadResult is the resolved configuration and where it came from.
type LoadResult struct {
	Config *config.Config
	Paths  *ConfigPaths

	// LoadedFrom lists the files applied, lowest precedence first.
	LoadedFrom []string

	// Warnings are accepted settings worth pointing out.
	Warnings []string
}

// Load layers, from lowest to highest precedence: defaults, the system,
// user, project and explicit config files, the environment and the CLI.
// The result is validated; a rejected setting matches ErrInvalidConfig.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		workDir = wd
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath
	if opts.IgnoreSystemConfig {
		paths.System = ""
	}
	if opts.IgnoreUserConfig {
		paths.User = ""
	}

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	for _, layer := range []struct{ name, path string }{
		{"system", paths.System},
		{"user", paths.User},
		{"project", paths.Project},
		{"explicit", paths.Explicit},
	} {
		if layer.path == "" {
			continue
		}
		if err := applyFile(cfg, layer.path); err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	cfg = merge(cfg, opts.CLIConfig, opts.CLISet...)

	result.Warnings, err = Validate(cfg)
	if err != nil {
		return nil, err
	}
	result.Config = cfg
	return result, nil
}

// applyFile decodes the YAML file at path on top of cfg.
func applyFile(cfg *config.Config, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.MergeYAML(content); err != nil {
		return &ValidationError{FilePath: path, Message: err.Error()}
	}
	return nil
}
