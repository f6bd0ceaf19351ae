package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TipLabel is the caption above the tip options.
const TipLabel = "Tip Percentage"

// OptionView is one selectable percentage.
type OptionView struct {
	Label      string
	Percentage int
	Selected   bool
}

// SelectorView is everything the tip selector needs to draw itself.
type SelectorView struct {
	Label   string
	Options []OptionView
}

// Selected returns the selected option, if any.
func (v SelectorView) Selected() (OptionView, bool) {
	for _, opt := range v.Options {
		if opt.Selected {
			return opt, true
		}
	}
	return OptionView{}, false
}

// TipSelector renders the fixed tip options with the selection marked.
type TipSelector struct {
	meter Meter
}

// NewTipSelector constructs a tip selector whose meter is meterWidth cells wide.
func NewTipSelector(meterWidth int) TipSelector {
	return TipSelector{meter: NewMeter(meterWidth)}
}

// Row renders the options on one line. The selection is bracketed so it
// stays visible without color.
func (s TipSelector) Row(v SelectorView) string {
	parts := make([]string, 0, len(v.Options))
	for _, opt := range v.Options {
		if opt.Selected {
			parts = append(parts, selectedOptionStyle.Render("["+opt.Label+"]"))
			continue
		}
		parts = append(parts, optionStyle.Render(" "+opt.Label+" "))
	}
	return strings.Join(parts, " ")
}

// View renders the selector card.
func (s TipSelector) View(v SelectorView, opts CardOptions) string {
	body := s.Row(v)
	if selected, ok := v.Selected(); ok {
		body = lipgloss.JoinVertical(lipgloss.Left, body, s.meter.View(selected.Percentage))
	}
	return Card(v.Label, body, opts)
}
