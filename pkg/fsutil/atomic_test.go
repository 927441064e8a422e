package fsutil_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/yaklabco/rhymesort/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes new file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "result.txt")
		content := []byte("Sorting by alphabet\n")

		if err := fsutil.WriteAtomic(context.Background(), path, content, 0644); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != string(content) {
			t.Errorf("content = %q, want %q", got, content)
		}
	})

	t.Run("uses default mode when zero", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "result.txt")

		if err := fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		stat, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if stat.Mode().Perm() != fsutil.DefaultFileMode {
			t.Errorf("mode = %o, want %o", stat.Mode().Perm(), fsutil.DefaultFileMode)
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "result.txt")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := fsutil.WriteAtomic(ctx, path, []byte("content"), 0644); err == nil {
			t.Fatal("expected error for cancelled context")
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("file should not have been created")
		}
	})
}

func TestWriteAtomicFunc(t *testing.T) {
	t.Parallel()

	t.Run("streams writer output", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "result.txt")

		err := fsutil.WriteAtomicFunc(context.Background(), path, 0644, func(w io.Writer) error {
			_, err := io.WriteString(w, "one\ntwo\n")
			return err
		})
		if err != nil {
			t.Fatalf("WriteAtomicFunc() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != "one\ntwo\n" {
			t.Errorf("content = %q", got)
		}
	})

	t.Run("keeps existing file and removes temp file on failure", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "result.txt")
		if err := os.WriteFile(path, []byte("previous run"), 0644); err != nil {
			t.Fatalf("setup: %v", err)
		}

		errWrite := errors.New("render failed")
		err := fsutil.WriteAtomicFunc(context.Background(), path, 0644, func(w io.Writer) error {
			_, _ = io.WriteString(w, "partial")
			return errWrite
		})
		if !errors.Is(err, errWrite) {
			t.Fatalf("error = %v, want %v", err, errWrite)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != "previous run" {
			t.Errorf("existing file was modified: %q", got)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("readdir: %v", err)
		}
		for _, entry := range entries {
			if strings.Contains(entry.Name(), ".tmp.") {
				t.Errorf("temp file left behind: %s", entry.Name())
			}
		}
	})

	t.Run("refuses a device as target", func(t *testing.T) {
		t.Parallel()

		if runtime.GOOS == "windows" {
			t.Skip("no device node to stat")
		}

		err := fsutil.WriteAtomicFunc(context.Background(), os.DevNull, 0644, func(w io.Writer) error {
			_, err := io.WriteString(w, "document")
			return err
		})
		if !errors.Is(err, fsutil.ErrNotRegular) {
			t.Fatalf("error = %v, want ErrNotRegular", err)
		}

		info, err := os.Stat(os.DevNull)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if info.Mode()&os.ModeDevice == 0 {
			t.Errorf("%s was replaced by a regular file", os.DevNull)
		}
	})

	t.Run("refuses a directory as target", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		err := fsutil.WriteAtomicFunc(context.Background(), dir, 0644, func(io.Writer) error {
			return nil
		})
		if !errors.Is(err, fsutil.ErrNotRegular) {
			t.Fatalf("error = %v, want ErrNotRegular", err)
		}
	})
}
