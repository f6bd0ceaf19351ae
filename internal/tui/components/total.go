package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tipper/internal/tip"
)

// TotalLabel is the caption above the check total.
const TotalLabel = "Check Total"

// TotalView carries the already formatted totals.
type TotalView struct {
	Label   string
	Text    string
	TipText string
	Color   tip.Color
}

// TotalDisplay renders the check total tinted by the tip color.
type TotalDisplay struct{}

// NewTotalDisplay creates a TotalDisplay.
func NewTotalDisplay() TotalDisplay {
	return TotalDisplay{}
}

// View renders the total card.
func (TotalDisplay) View(v TotalView, opts CardOptions) string {
	total := ColorStyle(v.Color).Render(v.Text)
	body := total
	if v.TipText != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, total, labelStyle.Render("Tip: "+v.TipText))
	}
	return Card(v.Label, body, opts)
}
