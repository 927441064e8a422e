package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/rhymesort/internal/configloader"
	"github.com/yaklabco/rhymesort/pkg/fsutil"
	"github.com/yaklabco/rhymesort/pkg/lines"
	"github.com/yaklabco/rhymesort/pkg/runner"
)

// ErrUsage marks invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

// Exit codes for rhymesort, following sysexits.h where one applies.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates an error that fits no other category.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitDataError indicates input the sorter cannot accept.
	ExitDataError = 65

	// ExitNoInput indicates a missing input file.
	ExitNoInput = 66

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74

	// ExitConfigError indicates configuration errors.
	ExitConfigError = 78
)

// ExitCodeFor maps an error returned by a command to a process exit code.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, configloader.ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, runner.ErrInternal):
		return ExitInternalError
	case errors.Is(err, fsutil.ErrNotFound):
		return ExitNoInput
	case errors.Is(err, lines.ErrEmptyInput),
		errors.Is(err, lines.ErrTooManyLines),
		errors.Is(err, lines.ErrBufferTooLarge),
		errors.Is(err, fsutil.ErrBinaryContent):
		return ExitDataError
	case errors.Is(err, runner.ErrIOFailure):
		return ExitIOError
	default:
		return ExitFailure
	}
}

// usageArgs marks errors from a positional argument validator as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return nil
	}
}
