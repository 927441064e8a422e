package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/rhymesort/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Input      string    `json:"input"`
	Output     string    `json:"output"`
	InputHash  string    `json:"inputSha256"`
	BackupPath string    `json:"backup,omitempty"`
	Stats      JSONStats `json:"stats"`
}

// JSONStats contains run statistics.
type JSONStats struct {
	BytesRead    int64 `json:"bytesRead"`
	BytesWritten int64 `json:"bytesWritten"`
	LinesTotal   int   `json:"linesTotal"`
	LinesSorted  int   `json:"linesSorted"`
	LinesSkipped int   `json:"linesSkipped"`
	Truncated    bool  `json:"truncated"`
	DurationMS   int64 `json:"durationMs"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); flushErr != nil && err == nil {
			err = fmt.Errorf("flush output: %w", flushErr)
		}
	}()

	if result == nil {
		return nil
	}

	output := JSONOutput{
		Input:      result.Input,
		Output:     result.Output,
		InputHash:  result.InputHashHex(),
		BackupPath: result.BackupPath,
		Stats: JSONStats{
			BytesRead:    result.Stats.BytesRead,
			BytesWritten: result.Stats.BytesWritten,
			LinesTotal:   result.Stats.LinesTotal,
			LinesSorted:  result.Stats.LinesSorted,
			LinesSkipped: result.Stats.LinesSkipped,
			Truncated:    result.Stats.Truncated,
			DurationMS:   result.Stats.Duration.Milliseconds(),
		},
	}

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}
