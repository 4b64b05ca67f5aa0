package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tododeck/tododeck/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	DescNormal    lipgloss.Color

	// Priority colors
	High   lipgloss.Color
	Medium lipgloss.Color
	Low    lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	DescNormal:    lipgloss.Color("#636E72"), // Gray

	High:   lipgloss.Color("#D63031"), // Red
	Medium: lipgloss.Color("#FDCB6E"), // Yellow
	Low:    lipgloss.Color("#74B9FF"), // Light blue
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App        lipgloss.Style
	Header     lipgloss.Style
	FilterLine lipgloss.Style

	// Todo list
	TodoNormal     lipgloss.Style
	TodoSelected   lipgloss.Style
	TodoDone       lipgloss.Style
	TodoDesc       lipgloss.Style
	CursorNormal   lipgloss.Style
	CursorSelected lipgloss.Style

	// Priority badges
	PriorityHigh   lipgloss.Style
	PriorityMedium lipgloss.Style
	PriorityLow    lipgloss.Style

	// Stats footer
	Stats lipgloss.Style

	// Input
	Input       lipgloss.Style
	InputPrompt lipgloss.Style

	// Dialog
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	ErrorMsg lipgloss.Style
	Footer   lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		FilterLine: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		TodoNormal: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		TodoSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected),

		TodoDone: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Strikethrough(true),

		TodoDesc: lipgloss.NewStyle().
			Foreground(Colors.DescNormal),

		CursorNormal: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		CursorSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		PriorityHigh: lipgloss.NewStyle().
			Foreground(Colors.High),

		PriorityMedium: lipgloss.NewStyle().
			Foreground(Colors.Medium),

		PriorityLow: lipgloss.NewStyle().
			Foreground(Colors.Low),

		Stats: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginTop(1),

		Input: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginTop(1),
	}
}

// PriorityStyle returns the style for a given priority.
func (s Styles) PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityHigh:
		return s.PriorityHigh
	case domain.PriorityLow:
		return s.PriorityLow
	default:
		return s.PriorityMedium
	}
}

// PriorityIcon returns an icon for a given priority.
func PriorityIcon(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return "▲"
	case domain.PriorityLow:
		return "▽"
	default:
		return "◆"
	}
}
