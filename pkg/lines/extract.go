package lines

import "fmt"

const (
	// DefaultMaxBytes is the default upper bound on buffer size.
	DefaultMaxBytes int64 = 10_000_000

	// DefaultMaxLines is the default upper bound on line count.
	DefaultMaxLines = 10_000_000
)

// Limits bounds the size of the input accepted by Extract.
// A zero or negative field disables that check.
type Limits struct {
	MaxBytes int64
	MaxLines int
}

// DefaultLimits returns the limits used when nothing else is configured.
func DefaultLimits() Limits {
	return Limits{
		MaxBytes: DefaultMaxBytes,
		MaxLines: DefaultMaxLines,
	}
}

// Extract splits buf into lines.
//
// Every terminator ends a line, so the line count is one more than the number
// of terminators seen; a buffer ending in a terminator has a final empty line.
// Splitting stops at the end of buf or at the first sentinel byte, which ends
// the current line. buf is not modified.
func Extract(buf []byte, limits Limits) (*Collection, error) {
	size := len(buf)
	if size == 0 {
		return nil, fmt.Errorf("%w: zero-length buffer", ErrEmptyInput)
	}
	if limits.MaxBytes > 0 && int64(size) > limits.MaxBytes {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrBufferTooLarge, size, limits.MaxBytes)
	}

	coll := &Collection{
		Buffer:  buf,
		DataEnd: size,
	}

	lineStart := 0

scan:
	for idx, char := range buf {
		switch char {
		case Sentinel:
			coll.DataEnd = idx
			break scan
		case Terminator:
			coll.Spans = append(coll.Spans, Span{Start: lineStart, Len: idx - lineStart})
			coll.Terminators = append(coll.Terminators, idx)
			lineStart = idx + 1

			// Bail out early instead of building a huge span table.
			if limits.MaxLines > 0 && len(coll.Spans) >= limits.MaxLines {
				return nil, fmt.Errorf("%w: more than %d lines", ErrTooManyLines, limits.MaxLines)
			}
		}
	}

	// Last line: whatever follows the final terminator, possibly nothing.
	coll.Spans = append(coll.Spans, Span{Start: lineStart, Len: coll.DataEnd - lineStart})

	if coll.Len() <= 2 && coll.Spans[0].Len == 0 {
		return nil, fmt.Errorf("%w: only a single empty line", ErrEmptyInput)
	}

	return coll, nil
}
