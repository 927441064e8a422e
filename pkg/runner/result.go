package runner

import (
	"encoding/hex"
	"time"
)

// Stats captures aggregate information about a run.
type Stats struct {
	// BytesRead is the size of the input.
	BytesRead int64

	// LinesTotal is the number of lines extracted from the input.
	LinesTotal int

	// LinesSorted is the number of lines written to each sorted section.
	LinesSorted int

	// LinesSkipped is the number of trivial lines left out of the sorted sections.
	LinesSkipped int

	// BytesWritten is the size of the output document.
	BytesWritten int64

	// Truncated is true when a NUL byte ended line extraction early.
	Truncated bool

	// Duration is the wall time of the run.
	Duration time.Duration
}

// Result is the outcome of a successful run.
type Result struct {
	// Input is the path that was read.
	Input string

	// Output is the path that was written, or "-" for standard output.
	Output string

	// InputHash is the SHA-256 hash of the input.
	InputHash [32]byte

	// BackupPath is the backup of the previous output, empty if none was made.
	BackupPath string

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// InputHashHex returns the input hash as a hex string.
func (r *Result) InputHashHex() string {
	if r == nil {
		return ""
	}
	return hex.EncodeToString(r.InputHash[:])
}
