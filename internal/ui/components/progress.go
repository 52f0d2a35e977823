package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/batball/internal/ui/theme"
)

// Meter displays a labelled horizontal gauge of Value out of Max.
type Meter struct {
	Label string
	Value int
	Max   int
	Width int
	Fill  color.Color
}

// NewMeter creates a meter filled with the theme's secondary color.
func NewMeter(label string, value, maxValue, width int) Meter {
	return Meter{
		Label: label,
		Value: value,
		Max:   maxValue,
		Width: width,
		Fill:  theme.Secondary,
	}
}

// Filled returns the number of cells drawn filled for a bar of barWidth.
func (m Meter) Filled(barWidth int) int {
	if m.Max <= 0 || barWidth <= 0 {
		return 0
	}
	v := min(max(m.Value, 0), m.Max)
	return barWidth * v / m.Max
}

// View renders the meter.
func (m Meter) View() string {
	label := lipgloss.NewStyle().Foreground(theme.Text).Width(8).Render(m.Label)
	count := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf(" %3d/%d", m.Value, m.Max))

	barWidth := max(m.Width-lipgloss.Width(label)-lipgloss.Width(count), 4)
	filled := m.Filled(barWidth)

	fill := m.Fill
	if fill == nil {
		fill = theme.Secondary
	}

	return label +
		lipgloss.NewStyle().Background(fill).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled)) +
		count
}
