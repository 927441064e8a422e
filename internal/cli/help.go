package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/rhymesort/internal/ui/pretty"
)

// helpIndent prefixes every entry listed under a help heading.
const helpIndent = "  "

// installHelp replaces cobra's help and usage output on root and its subcommands.
func installHelp(root *cobra.Command) {
	root.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		if err := writeHelp(cmd.OutOrStdout(), cmd); err != nil {
			cmd.PrintErrln(err)
		}
	})
	root.SetUsageFunc(func(cmd *cobra.Command) error {
		return writeUsage(cmd.OutOrStderr(), cmd, helpStyles(cmd))
	})
}

// helpStyles resolves --color for cmd at the time help is shown.
func helpStyles(cmd *cobra.Command) *pretty.Styles {
	mode := "auto"
	if flag := cmd.Flag("color"); flag != nil {
		mode = flag.Value.String()
	}
	return pretty.NewStyles(pretty.IsColorEnabled(mode, cmd.OutOrStdout()))
}

// writeHelp prints the description of cmd followed by its usage.
func writeHelp(w io.Writer, cmd *cobra.Command) error {
	desc := cmd.Long
	if desc == "" {
		desc = cmd.Short
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", strings.TrimRight(desc, " \n")); err != nil {
		return fmt.Errorf("write help: %w", err)
	}
	return writeUsage(w, cmd, helpStyles(cmd))
}

// writeUsage prints the usage line, the subcommands and the flags of cmd.
func writeUsage(w io.Writer, cmd *cobra.Command, styles *pretty.Styles) error {
	var b strings.Builder

	heading := func(title string) {
		b.WriteString(styles.Bold.Render(title))
		b.WriteString("\n")
	}

	heading("Usage:")
	if cmd.Runnable() {
		b.WriteString(helpIndent + styles.Path.Render(cmd.UseLine()) + "\n")
	}
	if cmd.HasAvailableSubCommands() {
		b.WriteString(helpIndent + styles.Path.Render(cmd.CommandPath()+" [command]") + "\n")
	}

	if cmd.HasAvailableSubCommands() {
		b.WriteString("\n")
		heading("Commands:")
		var names []string
		for _, sub := range cmd.Commands() {
			if sub.IsAvailableCommand() {
				names = append(names, sub.Name())
			}
		}
		width := longest(names)
		for _, sub := range cmd.Commands() {
			if !sub.IsAvailableCommand() {
				continue
			}
			fmt.Fprintf(&b, "%s%s  %s\n", helpIndent,
				styles.Success.Render(pad(sub.Name(), width)), sub.Short)
		}
	}

	if cmd.HasAvailableLocalFlags() {
		b.WriteString("\n")
		heading("Flags:")
		writeFlags(&b, cmd.LocalFlags(), styles)
	}

	if cmd.HasAvailableInheritedFlags() {
		b.WriteString("\n")
		heading("Global Flags:")
		writeFlags(&b, cmd.InheritedFlags(), styles)
	}

	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(&b, "\nRun %q for more about a command.\n", cmd.CommandPath()+" [command] --help")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write usage: %w", err)
	}
	return nil
}

// writeFlags lists visible flags as "-s, --name type   usage (default x)".
func writeFlags(b *strings.Builder, flags *pflag.FlagSet, styles *pretty.Styles) {
	type row struct {
		names, kind, usage string
	}

	var rows []row
	flags.VisitAll(func(flag *pflag.Flag) {
		if flag.Hidden {
			return
		}

		names := "    --" + flag.Name
		if flag.Shorthand != "" {
			names = "-" + flag.Shorthand + ", --" + flag.Name
		}

		kind := flag.Value.Type()
		if kind == "bool" {
			kind = ""
		}

		usage := flag.Usage
		if flag.DefValue != "" && flag.DefValue != "false" && flag.DefValue != "0" {
			usage += fmt.Sprintf(" (default %q)", flag.DefValue)
		}

		rows = append(rows, row{names: names, kind: kind, usage: usage})
	})

	width := 0
	for _, r := range rows {
		width = max(width, len(r.names)+1+len(r.kind))
	}

	for _, r := range rows {
		plain := r.names
		styled := styles.Value.Render(r.names)
		if r.kind != "" {
			plain += " " + r.kind
			styled += " " + styles.Dim.Render(r.kind)
		}
		b.WriteString(helpIndent + styled + strings.Repeat(" ", width-len(plain)) + "   " + r.usage + "\n")
	}
}

func longest(words []string) int {
	n := 0
	for _, word := range words {
		n = max(n, len(word))
	}
	return n
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
