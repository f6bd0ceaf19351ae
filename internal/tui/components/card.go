package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Minimum content rows inside a card.
const (
	cardRows     = 3
	tallCardRows = 4
)

// CardOptions controls how Card boxes its content.
type CardOptions struct {
	// Width is the outer width including the border. Zero means fit content.
	Width int
	// Tall adds vertical padding for very large text sizes.
	Tall bool
}

// Card renders a labelled, bordered box around body. It is the shared frame
// for every section of the calculator.
func Card(label, body string, opts CardOptions) string {
	style := cardStyle.Height(cardRows)
	if opts.Tall {
		style = style.PaddingTop(1).PaddingBottom(1).Height(tallCardRows)
	}
	if opts.Width > 0 {
		inner := opts.Width - style.GetHorizontalBorderSize()
		if inner < 1 {
			inner = 1
		}
		style = style.Width(inner)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, labelStyle.Render(label), body)
	return style.Render(content)
}
