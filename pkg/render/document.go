package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/yaklabco/rhymesort/pkg/lines"
)

// Section headings, in output order.
const (
	HeadingAlphabet = "Sorting by alphabet"
	HeadingRhyme    = "Sorting by rhymes"
	HeadingOrigin   = "Origin text"
)

// bufWriterSize is the buffer size for the document writer (64 KiB).
const bufWriterSize = 64 * 1024

// Compile-time interface check.
var _ io.WriterTo = (*Document)(nil)

// Document is the complete output: two sorted views of Buffer and the
// original text.
type Document struct {
	// Buffer is the original input.
	Buffer []byte

	// Alphabetic holds the spans in alphabetic order.
	Alphabetic []lines.Span

	// Rhyme holds the spans in rhyme order.
	Rhyme []lines.Span

	// Emitted is set by WriteTo to the number of lines written to the
	// alphabetic section.
	Emitted int
}

// WriteTo writes the document to w.
//
// Layout: each sorted section is its heading, its lines and a blank line;
// then the original-text heading, the original bytes and a final blank line.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	counter := &countingWriter{w: w}
	bw := bufio.NewWriterSize(counter, bufWriterSize)

	sections := []struct {
		heading string
		spans   []lines.Span
		counted bool
	}{
		{HeadingAlphabet, d.Alphabetic, true},
		{HeadingRhyme, d.Rhyme, false},
	}

	for _, section := range sections {
		if err := writeHeading(bw, section.heading); err != nil {
			return counter.n, err
		}
		emitted, err := RenderSorted(bw, d.Buffer, section.spans)
		if err != nil {
			return counter.n, fmt.Errorf("%s: %w", section.heading, err)
		}
		if section.counted {
			d.Emitted = emitted
		}
		if err := bw.WriteByte(lines.Terminator); err != nil {
			return counter.n, fmt.Errorf("write separator: %w", err)
		}
	}

	if err := writeHeading(bw, HeadingOrigin); err != nil {
		return counter.n, err
	}
	if _, err := RenderOriginal(bw, d.Buffer); err != nil {
		return counter.n, err
	}
	if err := bw.WriteByte(lines.Terminator); err != nil {
		return counter.n, fmt.Errorf("write separator: %w", err)
	}

	if err := bw.Flush(); err != nil {
		return counter.n, fmt.Errorf("flush: %w", err)
	}
	return counter.n, nil
}

func writeHeading(w *bufio.Writer, heading string) error {
	if _, err := w.WriteString(heading); err != nil {
		return fmt.Errorf("write heading: %w", err)
	}
	if err := w.WriteByte(lines.Terminator); err != nil {
		return fmt.Errorf("write heading: %w", err)
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
