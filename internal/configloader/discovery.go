package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ConfigPaths holds the configuration files found for a run. Empty means absent.
type ConfigPaths struct {
	System   string
	User     string
	Project  string
	Explicit string
}

// DiscoverPaths locates the system, user and project config files. The
// project file is the nearest .rhymesort.yml or .rhymesort.yaml at or above
// workDir, searched no further than a .git marker or the home directory.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	project, err := findProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	return &ConfigPaths{
		System:  firstFile(systemConfigDir(), "config.yaml", "config.yml"),
		User:    firstFile(userConfigDir(), "config.yaml", "config.yml"),
		Project: project,
	}, nil
}

func systemConfigDir() string {
	if runtime.GOOS != "windows" {
		return "/etc/rhymesort"
	}
	if dir := os.Getenv("ProgramData"); dir != "" {
		return filepath.Join(dir, "rhymesort")
	}
	return `C:\ProgramData\rhymesort`
}

func userConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "rhymesort")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "rhymesort")
}

func findProjectConfig(ctx context.Context, workDir string) (string, error) {
	dir, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	home, _ := os.UserHomeDir()

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("context cancelled: %w", err)
		}

		if path := firstFile(dir, ".rhymesort.yml", ".rhymesort.yaml"); path != "" {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if exists(filepath.Join(dir, ".git")) || dir == home || parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// firstFile returns the first of names that is a regular file in dir.
func firstFile(dir string, names ...string) string {
	if dir == "" {
		return ""
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
