package lines

import "errors"

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrEmptyInput is returned for a zero-byte buffer or one holding a single empty line.
	ErrEmptyInput = errors.New("input is empty")

	// ErrTooManyLines is returned when the line count exceeds Limits.MaxLines.
	ErrTooManyLines = errors.New("too many lines")

	// ErrBufferTooLarge is returned when the buffer exceeds Limits.MaxBytes.
	ErrBufferTooLarge = errors.New("input too large")
)
