package lines_test

import (
	"testing"

	"github.com/yaklabco/rhymesort/pkg/lines"
)

func TestTrim(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		dir     lines.Direction
		want    string
	}{
		{"forward leading punctuation", "...Apple", lines.Forward, "Apple"},
		{"forward keeps trailing punctuation", "  hi!", lines.Forward, "hi!"},
		{"forward nothing to trim", "word", lines.Forward, "word"},
		{"forward digits are skipped", "42 apples", lines.Forward, "apples"},
		{"backward trailing punctuation", "Hello!", lines.Backward, "Hello"},
		{"backward keeps leading punctuation", "--end--", lines.Backward, "--end"},
		{"backward carriage return", "line\r", lines.Backward, "line"},
		{"forward all punctuation", "!!!", lines.Forward, ""},
		{"backward all punctuation", "###", lines.Backward, ""},
		{"forward empty", "", lines.Forward, ""},
		{"backward empty", "", lines.Backward, ""},
		{"non-ascii is not alphabetic", "\xc3\xa9t\xc3\xa9", lines.Backward, "\xc3\xa9t"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			// Embed the line between other bytes so trimming must respect the span limits.
			buf := []byte("XX" + testCase.content + "YY")
			span := lines.Span{Start: 2, Len: len(testCase.content)}

			trimmed := lines.Trim(buf, span, testCase.dir)

			if trimmed.Start < span.Start || trimmed.End() > span.End() {
				t.Fatalf("Trim() = %+v escapes %+v", trimmed, span)
			}
			if got := string(lines.Bytes(buf, trimmed)); got != testCase.want {
				t.Errorf("Trim() = %q, want %q", got, testCase.want)
			}
		})
	}
}

func TestIsAlpha(t *testing.T) {
	t.Parallel()

	for _, b := range []byte("azAZmQ") {
		if !lines.IsAlpha(b) {
			t.Errorf("IsAlpha(%q) = false", b)
		}
	}
	for _, b := range []byte("09 !@[`{~\n\x00\xff") {
		if lines.IsAlpha(b) {
			t.Errorf("IsAlpha(%q) = true", b)
		}
	}
}

func TestDirectionString(t *testing.T) {
	t.Parallel()

	if lines.Forward.String() != "forward" || lines.Backward.String() != "backward" {
		t.Errorf("unexpected names: %s, %s", lines.Forward, lines.Backward)
	}
	if lines.Direction(9).String() != "unknown" {
		t.Errorf("Direction(9).String() = %s", lines.Direction(9))
	}
}
