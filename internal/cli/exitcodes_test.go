package cli_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/rhymesort/internal/cli"
	"github.com/yaklabco/rhymesort/internal/configloader"
	"github.com/yaklabco/rhymesort/pkg/fsutil"
	"github.com/yaklabco/rhymesort/pkg/lines"
	"github.com/yaklabco/rhymesort/pkg/runner"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: cli.ExitSuccess},
		{name: "usage", err: fmt.Errorf("%w: bad flag", cli.ErrUsage), want: cli.ExitInvalidUsage},
		{name: "config", err: &configloader.ValidationError{Field: "jobs", Message: "bad"}, want: cli.ExitConfigError},
		{name: "internal", err: fmt.Errorf("sort failed: %w", runner.ErrInternal), want: cli.ExitInternalError},
		{
			name: "missing input",
			err:  fmt.Errorf("%w: %w", runner.ErrIOFailure, fsutil.ErrNotFound),
			want: cli.ExitNoInput,
		},
		{name: "empty input", err: fmt.Errorf("in.txt: %w", lines.ErrEmptyInput), want: cli.ExitDataError},
		{name: "too many lines", err: lines.ErrTooManyLines, want: cli.ExitDataError},
		{
			name: "too large",
			err:  fmt.Errorf("%w: %w", lines.ErrBufferTooLarge, fsutil.ErrTooLarge),
			want: cli.ExitDataError,
		},
		{name: "binary", err: fsutil.ErrBinaryContent, want: cli.ExitDataError},
		{
			name: "write failure",
			err:  fmt.Errorf("%w: %w", runner.ErrIOFailure, fsutil.ErrPermissionDenied),
			want: cli.ExitIOError,
		},
		{name: "other", err: errors.New("boom"), want: cli.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cli.ExitCodeFor(tt.err))
		})
	}
}
