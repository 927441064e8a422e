package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/rhymesort/internal/logging"
	"github.com/yaklabco/rhymesort/pkg/config"
	"github.com/yaklabco/rhymesort/pkg/fsutil"
)

// defaultConfigFile is the project configuration file created by init.
const defaultConfigFile = ".rhymesort.yml"

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new rhymesort configuration file",
		Long: `Create a new .rhymesort.yml configuration file in the current directory
with sensible defaults.

Examples:
  rhymesort init                      Create a minimal .rhymesort.yml
  rhymesort init --full               Create a config listing every setting
  rhymesort init --output custom.yml  Write to a custom file path`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Generate full template with every setting")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .rhymesort.yml)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive(cmd.OutOrStdout())

	outputPath := flags.output
	if outputPath == "" {
		outputPath = defaultConfigFile
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil && !flags.force {
		if !isInteractive() {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		overwrite, err := confirmOverwrite(cmd.InOrStdin(), cmd.OutOrStdout(), outputPath)
		if err != nil {
			return err
		}
		if !overwrite {
			logger.Info("left existing file unchanged", logging.FieldPath, outputPath)
			return nil
		}
	} else if err == nil {
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{Full: flags.full})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := fsutil.WriteAtomic(cmd.Context(), absPath, content, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	if flags.full {
		logger.Info("full template lists every setting with its default")
	}
	logger.Info("run 'rhymesort sort' to sort input.txt into result.txt")

	return nil
}

// confirmOverwrite asks whether an existing file may be replaced.
func confirmOverwrite(in io.Reader, out io.Writer, path string) (bool, error) {
	if _, err := fmt.Fprintf(out, "%s already exists. Overwrite? [y/N] ", path); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}

	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		if err == io.EOF {
			return false, nil
		}
		return false, fmt.Errorf("read response: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// isInteractive returns true if stdin is a terminal.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
