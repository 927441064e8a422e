// Package fsutil provides file system helpers for rhymesort.
// It handles bounded reads, text detection, atomic writes, and output backups.
package fsutil

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-enry/go-enry/v2"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrNotRegular indicates an output path that exists but is not a regular
	// file, such as a device or a named pipe.
	ErrNotRegular = errors.New("not a regular file")

	// ErrTooLarge indicates the file is larger than the caller allows.
	ErrTooLarge = errors.New("file too large")

	// ErrBinaryContent indicates the content does not look like text.
	ErrBinaryContent = errors.New("content looks binary")
)

// FileInfo captures the state of a file at the time it was read.
type FileInfo struct {
	// Path is the path the file was read from.
	Path string

	// Mode is the file's permission and mode bits.
	Mode os.FileMode

	// ModTime is the file's modification time.
	ModTime time.Time

	// Size is the number of bytes read.
	Size int64

	// Hash is the SHA-256 hash of the content.
	Hash [32]byte
}

// ReadFile reads a whole file into memory.
// If maxBytes is positive, files larger than maxBytes are rejected with
// ErrTooLarge before their content is read.
func ReadFile(ctx context.Context, path string, maxBytes int64) ([]byte, *FileInfo, error) {
	select {
	case <-ctx.Done():
		return nil, nil, fmt.Errorf("read file: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, classify(path, err)
	}

	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	if maxBytes > 0 && stat.Size() > maxBytes {
		return nil, nil, fmt.Errorf("%w: %s is %d bytes, limit is %d", ErrTooLarge, path, stat.Size(), maxBytes)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, classify(path, err)
	}
	defer func() { _ = file.Close() }()

	var reader io.Reader = file
	if maxBytes > 0 {
		// The file may have grown since the stat.
		reader = io.LimitReader(file, maxBytes+1)
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	if maxBytes > 0 && int64(len(content)) > maxBytes {
		return nil, nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrTooLarge, path, maxBytes)
	}

	info := &FileInfo{
		Path:    path,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    int64(len(content)),
		Hash:    sha256.Sum256(content),
	}

	return content, info, nil
}

// CheckText returns ErrBinaryContent if content looks like binary data.
func CheckText(content []byte) error {
	if enry.IsBinary(content) {
		return ErrBinaryContent
	}
	return nil
}

func classify(path string, err error) error {
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case os.IsPermission(err):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("stat %s: %w", path, err)
	}
}
