// Package render writes line views and the original text back out.
package render

import (
	"fmt"
	"io"

	"github.com/yaklabco/rhymesort/pkg/lines"
)

// newline is written after every rendered line.
var newline = []byte{lines.Terminator}

// RenderSorted writes the lines of buf referenced by spans, in slice order,
// each followed by a terminator. Trivial lines are skipped.
// It returns the number of lines written.
func RenderSorted(w io.Writer, buf []byte, spans []lines.Span) (int, error) {
	written := 0
	for _, span := range spans {
		if span.Trivial() {
			continue
		}
		if _, err := w.Write(lines.Bytes(buf, span)); err != nil {
			return written, fmt.Errorf("write line: %w", err)
		}
		if _, err := w.Write(newline); err != nil {
			return written, fmt.Errorf("write terminator: %w", err)
		}
		written++
	}
	return written, nil
}

// RenderOriginal writes buf verbatim. The buffer is never reordered, so the
// output matches the input byte for byte however its spans were sorted.
func RenderOriginal(w io.Writer, buf []byte) (int, error) {
	n, err := w.Write(buf)
	if err != nil {
		return n, fmt.Errorf("write original text: %w", err)
	}
	return n, nil
}
