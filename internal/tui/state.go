package tui

import (
	"math"

	"github.com/alexisbeaulieu97/tipper/internal/tip"
)

// State is everything the calculator screen holds. All transitions are pure
// and return a new State.
type State struct {
	CheckAmount   float64
	TipPercentage int
	Focused       bool
}

// NewState returns the initial state. An unsupported percentage falls back
// to tip.DefaultPercentage.
func NewState(percentage int) State {
	if !tip.IsSupported(percentage) {
		percentage = tip.DefaultPercentage
	}
	return State{TipPercentage: percentage}
}

// WithAmount sets the check amount, clamping it to a finite non-negative value.
func (s State) WithAmount(amount float64) State {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		amount = 0
	}
	s.CheckAmount = amount
	return s
}

// SelectPercentage picks p if it is one of the offered options.
func (s State) SelectPercentage(p int) State {
	if tip.IsSupported(p) {
		s.TipPercentage = p
	}
	return s
}

// ShiftSelection moves the selection delta options along, stopping at the ends.
func (s State) ShiftSelection(delta int) State {
	idx := tip.IndexOf(s.TipPercentage)
	if idx < 0 {
		idx = tip.IndexOf(tip.DefaultPercentage)
	}
	s.TipPercentage = tip.PercentageAt(idx + delta)
	return s
}

// WithFocus records whether the amount field holds input focus.
func (s State) WithFocus(focused bool) State {
	s.Focused = focused
	return s
}

// Bill returns the bill for the current amount and percentage.
func (s State) Bill() tip.Bill {
	return tip.Bill{Amount: s.CheckAmount, Percentage: s.TipPercentage}
}
