package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + checkbox glyphs + progress bar cells.
// Every renderer on the screen pulls from the one the program was
// started with.
type Theme struct {
	Name string

	Title    lipgloss.Style
	Accent   lipgloss.Style
	Success  lipgloss.Style
	Pending  lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style
	Done     lipgloss.Style
	Selected lipgloss.Style
	Help     lipgloss.Style
	Border   lipgloss.Style

	BoxChecked   string
	BoxUnchecked string
	BarFilled    string
	BarEmpty     string
}

// ByName returns one of the built-in themes. Unknown names get classic.
func ByName(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:         "neon",
			Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Muted:        lipgloss.NewStyle().Faint(true),
			Done:         lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
			Help:         lipgloss.NewStyle().Faint(true),
			Border:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("13")).Padding(0, 1),
			BoxChecked:   "◼",
			BoxUnchecked: "◻",
			BarFilled:    "█",
			BarEmpty:     "░",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:         "mono",
			Title:        plain,
			Accent:       plain,
			Success:      plain,
			Pending:      plain,
			Error:        plain,
			Muted:        plain,
			Done:         plain,
			Selected:     plain,
			Help:         plain,
			Border:       lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
			BoxChecked:   "[x]",
			BoxUnchecked: "[ ]",
			BarFilled:    "#",
			BarEmpty:     "-",
		}
	default: // classic
		return Theme{
			Name:         "classic",
			Title:        lipgloss.NewStyle().Bold(true),
			Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Muted:        lipgloss.NewStyle().Faint(true),
			Done:         lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
			Help:         lipgloss.NewStyle().Faint(true),
			Border:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1),
			BoxChecked:   "☑",
			BoxUnchecked: "☐",
			BarFilled:    "█",
			BarEmpty:     "░",
		}
	}
}

// progressBar renders "[████░░░░]" with the theme's cells.
func (t Theme) progressBar(done, total, width int) string {
	if total == 0 {
		total = 1
	}
	if width <= 0 {
		width = 20
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(t.BarFilled, filled) + strings.Repeat(t.BarEmpty, width-filled)
	return "[" + bar + "]"
}
