package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/yaklabco/rhymesort/internal/logging"
	"github.com/yaklabco/rhymesort/pkg/config"
	"github.com/yaklabco/rhymesort/pkg/fsutil"
	"github.com/yaklabco/rhymesort/pkg/lines"
	"github.com/yaklabco/rhymesort/pkg/render"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrIOFailure wraps any failure to open, read, or write a file.
	ErrIOFailure = errors.New("i/o failure")

	// ErrInternal wraps a broken internal invariant, such as an out-of-range span.
	ErrInternal = errors.New("internal error")
)

// Run reads the input, sorts its lines both ways, and writes the document.
//
// Nothing is written unless every earlier stage succeeded, and a file output
// is replaced atomically, so a failed run leaves no partial result behind.
func Run(ctx context.Context, opts Options) (*Result, error) {
	cfg := opts.effectiveConfig()
	logger := logging.FromContext(ctx)
	start := time.Now()

	content, info, err := fsutil.ReadFile(ctx, cfg.Input, cfg.MaxBytes)
	if err != nil {
		if errors.Is(err, fsutil.ErrTooLarge) {
			return nil, fmt.Errorf("%w: %w", lines.ErrBufferTooLarge, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	logger.Debug("input read", logging.FieldInput, cfg.Input, logging.FieldBytes, info.Size)

	if !cfg.AllowBinary {
		if err := fsutil.CheckText(content); err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.Input, err)
		}
	}

	coll, err := lines.Extract(content, cfg.Limits())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Input, err)
	}
	logger.Debug("lines extracted", logging.FieldLines, coll.Len())

	if coll.Truncated() {
		logger.Warn("input contains a NUL byte; lines after it are not sorted",
			logging.FieldInput, cfg.Input)
	}

	views, err := SortViews(ctx, coll, cfg.Jobs)
	if err != nil {
		return nil, err
	}
	logger.Debug("views sorted", logging.FieldJobs, cfg.Jobs)

	doc := &render.Document{
		Buffer:     coll.Buffer,
		Alphabetic: views.Alphabetic,
		Rhyme:      views.Rhyme,
	}

	result := &Result{
		Input:     cfg.Input,
		Output:    cfg.Output,
		InputHash: info.Hash,
	}

	written, err := writeDocument(ctx, cfg, doc, opts.effectiveStdout(), result)
	if err != nil {
		return nil, err
	}

	result.Stats = Stats{
		BytesRead:    info.Size,
		LinesTotal:   coll.Len(),
		LinesSorted:  doc.Emitted,
		LinesSkipped: coll.CountTrivial(),
		BytesWritten: written,
		Truncated:    coll.Truncated(),
		Duration:     time.Since(start),
	}

	logger.Debug("document written",
		logging.FieldOutput, cfg.Output,
		logging.FieldBytes, written,
		logging.FieldEmitted, result.Stats.LinesSorted,
		logging.FieldSkipped, result.Stats.LinesSkipped,
		logging.FieldDuration, result.Stats.Duration,
	)

	return result, nil
}

func writeDocument(
	ctx context.Context,
	cfg *config.Config,
	doc *render.Document,
	stdout io.Writer,
	result *Result,
) (int64, error) {
	if cfg.Output == config.Stdio {
		written, err := doc.WriteTo(stdout)
		if err != nil {
			return 0, fmt.Errorf("%w: write stdout: %w", ErrIOFailure, err)
		}
		return written, nil
	}

	if cfg.BackupsEnabled() {
		backup := fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupMode(cfg.Backups.Mode)}
		created, err := fsutil.CreateBackup(ctx, cfg.Output, backup)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrIOFailure, err)
		}
		if created {
			result.BackupPath = fsutil.BackupPath(cfg.Output, backup.Mode)
			logging.FromContext(ctx).Debug("previous output backed up", logging.FieldBackup, result.BackupPath)
		}
	}

	var written int64
	err := fsutil.WriteAtomicFunc(ctx, cfg.Output, fsutil.DefaultFileMode, func(w io.Writer) error {
		n, err := doc.WriteTo(w)
		written = n
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("%w: write %s: %w", ErrIOFailure, cfg.Output, err)
	}

	return written, nil
}
