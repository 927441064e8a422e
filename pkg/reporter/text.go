package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/rhymesort/internal/ui/pretty"
	"github.com/yaklabco/rhymesort/pkg/runner"
)

// TextReporter formats results as human-readable text.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); flushErr != nil && err == nil {
			err = fmt.Errorf("flush output: %w", flushErr)
		}
	}()

	if result == nil {
		return nil
	}

	text := r.styles.FormatSummary(result)
	if r.opts.Compact {
		text = r.styles.FormatSummaryOneLine(result)
	}

	if _, err := r.bw.WriteString(text); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
