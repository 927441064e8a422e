package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// BackupMode selects where the previous output is kept.
type BackupMode string

const (
	// BackupModeSidecar keeps the previous output at <output>.rhymesort.bak.
	BackupModeSidecar BackupMode = "sidecar"
	BackupModeNone    BackupMode = "none"
)

// BackupSuffix is appended to the output path in sidecar mode.
const BackupSuffix = ".rhymesort.bak"

// BackupConfig controls backups of the output file.
type BackupConfig struct {
	Enabled bool
	Mode    BackupMode
}

// DefaultBackupConfig enables sidecar backups.
func DefaultBackupConfig() BackupConfig {
	return BackupConfig{Enabled: true, Mode: BackupModeSidecar}
}

// BackupPath is where path is backed up in mode, or "" when mode keeps none.
func BackupPath(path string, mode BackupMode) string {
	if mode == BackupModeNone {
		return ""
	}
	return path + BackupSuffix
}

// CreateBackup copies the current output at path to its backup location,
// replacing an older backup. It reports false when backups are off or there
// is no output yet.
func CreateBackup(ctx context.Context, path string, cfg BackupConfig) (bool, error) {
	if !cfg.Enabled || cfg.Mode == BackupModeNone {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("create backup: %w", err)
	}

	// Stat before opening: opening a named pipe would block.
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat output for backup: %w", err)
	}
	switch {
	case info.IsDir():
		return false, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	case !info.Mode().IsRegular():
		return false, fmt.Errorf("%w: %s", ErrNotRegular, path)
	}

	src, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("open output for backup: %w", err)
	}
	defer src.Close()

	err = WriteAtomicFunc(ctx, BackupPath(path, cfg.Mode), info.Mode().Perm(), func(w io.Writer) error {
		_, err := io.Copy(w, src)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}
	return true, nil
}
