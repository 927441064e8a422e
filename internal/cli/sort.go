package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/rhymesort/internal/configloader"
	"github.com/yaklabco/rhymesort/internal/logging"
	"github.com/yaklabco/rhymesort/pkg/config"
	"github.com/yaklabco/rhymesort/pkg/reporter"
	"github.com/yaklabco/rhymesort/pkg/runner"
)

type sortFlags struct {
	format string
}

func newSortCommand() *cobra.Command {
	var cfg config.Config
	flags := &sortFlags{}

	cmd := &cobra.Command{
		Use:   "sort [input]",
		Short: "Sort the lines of a text file",
		Long:  sortLongDescription + "\n\nEnvironment:\n" + configloader.EnvHelp(),
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd, args, &cfg, flags)
		},
	}

	addSortFlags(cmd, &cfg, flags)

	return cmd
}

const sortLongDescription = `Sort the lines of a text file alphabetically and by rhyme.

The result holds three sections: the lines in alphabetical order, the lines
in rhyme order, and the original text. Without arguments input.txt is read
and result.txt is written; an existing result is first copied to
result.txt.rhymesort.bak.

Examples:
  rhymesort sort                       # input.txt -> result.txt
  rhymesort sort poem.txt -o out.txt   # Sort poem.txt into out.txt
  rhymesort sort poem.txt -o -         # Write the result to stdout
  rhymesort sort --format json         # Print the run report as JSON
  rhymesort sort --jobs 1              # Sort the two views one after the other`

func runSort(cmd *cobra.Command, args []string, cfg *config.Config, flags *sortFlags) error {
	logger := logging.Default()

	// Only values explicitly given on the command line take part in the merge.
	if len(args) == 1 {
		cfg.Input = args[0]
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = config.ReportFormat(flags.format)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	var changed []string
	cmd.Flags().Visit(func(flag *pflag.Flag) {
		changed = append(changed, flag.Name)
	})

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
		CLISet:       changed,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldInput, finalCfg.Input,
		logging.FieldOutput, finalCfg.Output,
		logging.FieldMaxBytes, finalCfg.MaxBytes,
		logging.FieldMaxLines, finalCfg.MaxLines,
		logging.FieldJobs, finalCfg.Jobs,
		logging.FieldAllowBinary, finalCfg.AllowBinary,
	)

	result, err := runner.Run(ctx, runner.Options{
		Config: finalCfg,
		Stdout: cmd.OutOrStdout(),
	})
	if err != nil {
		return fmt.Errorf("sort failed: %w", err)
	}

	if finalCfg.Quiet {
		return nil
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(string(finalCfg.Format))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	// The document owns stdout when it is written there.
	var reportWriter io.Writer = cmd.OutOrStdout()
	toStdout := finalCfg.Output == config.Stdio
	if toStdout {
		reportWriter = cmd.ErrOrStderr()
	}

	rep, err := reporter.New(reporter.Options{
		Writer:  reportWriter,
		Format:  format,
		Color:   colorMode,
		Compact: toStdout,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	return nil
}

func addSortFlags(cmd *cobra.Command, cfg *config.Config, flags *sortFlags) {
	cmd.Flags().StringVarP(&cfg.Output, "output", "o", "", "output file, or - for stdout (default result.txt)")
	cmd.Flags().Int64Var(&cfg.MaxBytes, "max-bytes", 0, "largest accepted input in bytes (default 10000000)")
	cmd.Flags().IntVar(&cfg.MaxLines, "max-lines", 0, "largest accepted number of lines (default 10000000)")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "1 sorts the two views sequentially, 0 sorts them in parallel")
	cmd.Flags().BoolVar(&cfg.AllowBinary, "allow-binary", false, "skip the binary content check")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "do not back up an existing output file")
	cmd.Flags().StringVar(&flags.format, "format", "text", "report format: text, json")
	cmd.Flags().BoolVarP(&cfg.Quiet, "quiet", "q", false, "do not print the run report")
}
