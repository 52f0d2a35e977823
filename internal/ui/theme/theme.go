package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette: saffron, white and green on a night-match pitch.
var (
	Primary   = lipgloss.Color("#FF9933") // Saffron
	Secondary = lipgloss.Color("#138808") // Pitch Green
	Accent    = lipgloss.Color("#FACC15") // Trophy Gold
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Info      = lipgloss.Color("#38BDF8") // Sky
	Royal     = lipgloss.Color("#8B5CF6") // Indigo
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)

// OutcomeColor returns the color used for a round outcome name
// ("win", "lost" or "tie").
func OutcomeColor(outcome string) color.Color {
	switch outcome {
	case "win":
		return Success
	case "lost":
		return Error
	case "tie":
		return Info
	default:
		return Text
	}
}

// PowerColor returns the color used for a power tier name.
func PowerColor(level string) color.Color {
	switch level {
	case "super":
		return Info
	case "ultra":
		return Royal
	case "legendary":
		return Accent
	default:
		return TextDim
	}
}
