package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tipper/internal/tip"
)

var (
	// Colors
	primaryColor = lipgloss.Color("39")  // Blue
	redColor     = lipgloss.Color("196") // Red
	orangeColor  = lipgloss.Color("208") // Orange
	greenColor   = lipgloss.Color("42")  // Green
	mutedColor   = lipgloss.Color("245") // Gray
	textColor    = lipgloss.Color("252")

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			PaddingLeft(1).
			PaddingRight(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	valueStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Bold(true)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Italic(true)

	optionStyle = lipgloss.NewStyle().
			Foreground(textColor)

	selectedOptionStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)
)

// ColorStyle returns the style used for text tinted with c.
func ColorStyle(c tip.Color) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(TerminalColor(c))
}

// TerminalColor maps a tip color to its terminal color code.
func TerminalColor(c tip.Color) lipgloss.Color {
	switch c {
	case tip.ColorRed:
		return redColor
	case tip.ColorOrange:
		return orangeColor
	case tip.ColorGreen:
		return greenColor
	default:
		return textColor
	}
}
