// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/yaklabco/mdtags/pkg/tagfinder"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Status styles
	Error   lipgloss.Style
	Warning lipgloss.Style

	// Tag line components
	FilePath lipgloss.Style
	Location lipgloss.Style
	Flags    lipgloss.Style
	Text     lipgloss.Style
	Extra    lipgloss.Style

	// Tag kinds
	Header    lipgloss.Style
	Paragraph lipgloss.Style
	Emphasis  lipgloss.Style
	Link      lipgloss.Style
	List      lipgloss.Style
	Normal    lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Table styles
	TableHeader    lipgloss.Style
	TableSeparator lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),

		FilePath: lipgloss.NewStyle().Bold(true),
		Location: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Flags:    lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Text:     lipgloss.NewStyle(),
		Extra:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Underline(true),

		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Paragraph: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Emphasis:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Link:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		List:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Normal:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Error:          plain,
		Warning:        plain,
		FilePath:       plain,
		Location:       plain,
		Flags:          plain,
		Text:           plain,
		Extra:          plain,
		Header:         plain,
		Paragraph:      plain,
		Emphasis:       plain,
		Link:           plain,
		List:           plain,
		Normal:         plain,
		SummaryTitle:   plain,
		SummaryValue:   plain,
		Success:        plain,
		Failure:        plain,
		TableHeader:    plain,
		TableSeparator: plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// Kind returns the style for a tag kind.
func (s *Styles) Kind(kind tagfinder.Kind) lipgloss.Style {
	switch kind {
	case tagfinder.KindHeader:
		return s.Header
	case tagfinder.KindParagraph:
		return s.Paragraph
	case tagfinder.KindTextStyle, tagfinder.KindAlternativeTextStyle:
		return s.Emphasis
	case tagfinder.KindLink:
		return s.Link
	case tagfinder.KindOrderedList, tagfinder.KindUnorderedList:
		return s.List
	default:
		return s.Normal
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
