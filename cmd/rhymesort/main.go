// Command rhymesort writes a text's lines sorted alphabetically and by rhyme.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/yaklabco/rhymesort/internal/cli"
	"github.com/yaklabco/rhymesort/internal/logging"
)

// Injected with -ldflags "-X main.version=...".
//
//nolint:gochecknoglobals // ldflags targets
var version, commit, date = "dev", "none", "unknown"

func main() {
	os.Exit(run())
}

// run executes the command line and maps its error to an exit code. An
// interrupt cancels the sort before the output is replaced.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(cli.BuildInfo{Version: version, Commit: commit, Date: date})
	err := root.ExecuteContext(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	logging.Default().Error("rhymesort failed", logging.FieldError, err)
	return cli.ExitCodeFor(err)
}
