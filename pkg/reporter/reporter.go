// Package reporter writes the run report produced after a sort.
package reporter

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/yaklabco/rhymesort/pkg/runner"
)

// Format selects how the run report is rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

//nolint:gochecknoglobals // read-only lookup table
var formats = []Format{FormatText, FormatJSON}

// bufWriterSize is the buffer size for report writers (64 KiB).
const bufWriterSize = 64 * 1024

// ParseFormat maps a --format value to a Format. Empty selects text.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatText, nil
	}
	if format := Format(name); format.IsValid() {
		return format, nil
	}
	return "", fmt.Errorf("unknown format %q; valid formats: %s, %s", name, FormatText, FormatJSON)
}

func (f Format) String() string { return string(f) }

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool { return slices.Contains(formats, f) }

// Options configures a Reporter.
type Options struct {
	// Writer receives the report; stdout when nil.
	Writer io.Writer

	// Format defaults to text.
	Format Format

	// Color is "auto", "always" or "never".
	Color string

	// Compact reduces text output to a single line and minifies JSON.
	Compact bool
}

// Reporter writes the report for a finished run.
type Reporter interface {
	Report(ctx context.Context, result *runner.Result) error
}

// New returns the Reporter for opts.Format.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	switch opts.Format {
	case FormatText, "":
		return NewTextReporter(opts), nil
	case FormatJSON:
		return NewJSONReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", opts.Format)
	}
}
