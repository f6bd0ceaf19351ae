package components

import (
	"math"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/alexisbeaulieu97/tipper/internal/tip"
)

// Meter renders how generous the selected tip is relative to the largest option.
type Meter struct {
	bar progress.Model
	max int
}

// NewMeter creates a meter scaled to the largest selectable percentage.
func NewMeter(width int) Meter {
	options := tip.Percentages()
	bar := progress.New(progress.WithSolidFill(string(greenColor)), progress.WithoutPercentage())
	bar.Width = width
	return Meter{bar: bar, max: options[len(options)-1]}
}

// Ratio is the share of the meter filled for percent.
func (m Meter) Ratio(percent int) float64 {
	if m.max <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1.0, float64(percent)/float64(m.max)))
}

// View renders the meter for percent, tinted with its display color.
func (m Meter) View(percent int) string {
	bar := m.bar
	bar.FullColor = string(TerminalColor(tip.ColorFor(percent)))
	return bar.ViewAs(m.Ratio(percent))
}
