// Package pretty renders the styled run summary and help output with lipgloss.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles holds the renderers shared by the summary and the help screens.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Path    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Dim     lipgloss.Style
	Bold    lipgloss.Style
}

// NewStyles returns ANSI-colored styles, or pass-through styles when
// colorEnabled is false.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{plain, plain, plain, plain, plain, plain, plain, plain}
	}

	bold := lipgloss.NewStyle().Bold(true)
	fg := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return &Styles{
		Title:   bold,
		Label:   fg("7"),
		Value:   bold,
		Path:    fg("14"),
		Success: fg("10").Bold(true),
		Warning: fg("11").Bold(true),
		Dim:     fg("8"),
		Bold:    bold,
	}
}

// IsColorEnabled resolves a --color mode. "auto" colors only terminals and
// honours NO_COLOR (https://no-color.org/).
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := writer.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
