package fsutil

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultFileMode is used for written files when no mode is given.
const DefaultFileMode os.FileMode = 0o644

// WriteAtomic replaces path with content. See WriteAtomicFunc.
func WriteAtomic(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	return WriteAtomicFunc(ctx, path, mode, func(w io.Writer) error {
		_, err := w.Write(content)
		return err
	})
}

// WriteAtomicFunc fills a temp file next to path with write, fsyncs it and
// renames it over path, so readers see either the old file or the complete
// new one. On failure the temp file is removed and path is untouched. An
// existing path that is not a regular file is refused with ErrNotRegular
// because the rename would replace it.
func WriteAtomicFunc(ctx context.Context, path string, mode os.FileMode, write func(io.Writer) error) (err error) {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("write atomic: %w", err)
	}
	if info, statErr := os.Stat(path); statErr == nil && !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotRegular, path)
	}
	if mode == 0 {
		mode = DefaultFileMode
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	steps := []struct {
		what string
		run  func() error
	}{
		{"write temp file", func() error { return write(tmp) }},
		{"sync temp file", tmp.Sync},
		{"close temp file", tmp.Close},
		{"chmod temp file", func() error { return os.Chmod(tmp.Name(), mode) }},
		{"rename temp file", func() error { return os.Rename(tmp.Name(), path) }},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			return fmt.Errorf("%s: %w", step.what, err)
		}
	}
	return nil
}
