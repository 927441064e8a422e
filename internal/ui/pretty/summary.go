package pretty

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yaklabco/rhymesort/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordLine            = "line"
	wordLines           = "lines"
)

func plural(n int) string {
	if n == 1 {
		return wordLine
	}
	return wordLines
}

// FormatSummaryOneLine formats a run result as a single line.
// Example: "Sorted 12 lines (3 skipped) from input.txt into result.txt".
func (s *Styles) FormatSummaryOneLine(result *runner.Result) string {
	stats := result.Stats

	msg := s.Success.Render(fmt.Sprintf("Sorted %d %s", stats.LinesSorted, plural(stats.LinesSorted)))
	if stats.LinesSkipped > 0 {
		msg += s.Dim.Render(fmt.Sprintf(" (%d skipped)", stats.LinesSkipped))
	}
	msg += " from " + s.Path.Render(result.Input) + " into " + s.Path.Render(outputName(result.Output))

	return msg + "\n"
}

// FormatSummary formats a run result as a summary block.
func (s *Styles) FormatSummary(result *runner.Result) string {
	stats := result.Stats
	var builder strings.Builder

	row := func(label, value string) {
		builder.WriteString("  " + s.Label.Render(fmt.Sprintf("%-16s", label+":")) + " " + value + "\n")
	}

	builder.WriteString("\n")
	builder.WriteString(s.Title.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	row("Input", s.Path.Render(result.Input))
	row("Output", s.Path.Render(outputName(result.Output)))
	if result.BackupPath != "" {
		row("Backup", s.Path.Render(result.BackupPath))
	}

	builder.WriteString("\n")

	row("Lines read", s.Value.Render(strconv.Itoa(stats.LinesTotal)))
	row("Lines sorted", s.Value.Render(strconv.Itoa(stats.LinesSorted)))
	if stats.LinesSkipped > 0 {
		row("Lines skipped", s.Dim.Render(strconv.Itoa(stats.LinesSkipped)))
	}
	row("Bytes read", s.Value.Render(strconv.FormatInt(stats.BytesRead, 10)))
	row("Bytes written", s.Value.Render(strconv.FormatInt(stats.BytesWritten, 10)))
	row("Elapsed", s.Dim.Render(stats.Duration.Round(time.Microsecond).String()))

	builder.WriteString("\n")

	if stats.Truncated {
		builder.WriteString(s.Warning.Render("Input contains a NUL byte; lines after it were not sorted"))
	} else {
		builder.WriteString(s.Success.Render("Done"))
	}
	builder.WriteString("\n")

	return builder.String()
}

func outputName(output string) string {
	if output == "-" {
		return "standard output"
	}
	return output
}
