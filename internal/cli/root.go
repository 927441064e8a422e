// Package cli provides the Cobra command structure for rhymesort.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/rhymesort/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root rhymesort command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "rhymesort",
		Short: "Sort the lines of a text alphabetically and by rhyme",
		Long: `rhymesort reads a text file and writes a document with three sections:
its lines sorted alphabetically, the same lines sorted by rhyme (compared
from the last letter backwards), and the original text unchanged.

Comparison ignores case and any leading or trailing characters that are
not letters. Blank and single-character lines are left out of the sorted
sections.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	// Add subcommands.
	rootCmd.AddCommand(newSortCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	installHelp(rootCmd)

	return rootCmd
}
