package tui

import (
	"github.com/alexisbeaulieu97/tipper/internal/locale"
	"github.com/alexisbeaulieu97/tipper/internal/textsize"
	"github.com/alexisbeaulieu97/tipper/internal/tip"
	"github.com/alexisbeaulieu97/tipper/internal/tui/components"
)

// Title is the screen title.
const Title = "Tip"

// Layout selects how the cards are arranged.
type Layout int

const (
	// LayoutCompact stacks the cards without scrolling.
	LayoutCompact Layout = iota
	// LayoutExpanded puts the cards in a scrollable viewport.
	LayoutExpanded
)

func (l Layout) String() string {
	if l == LayoutExpanded {
		return "expanded"
	}
	return "compact"
}

// LayoutFor returns the layout for a text size preference.
func LayoutFor(size textsize.Size) Layout {
	if size.IsAccessibility() {
		return LayoutExpanded
	}
	return LayoutCompact
}

// TallCards reports whether cards get extra vertical room at size.
func TallCards(size textsize.Size) bool {
	return size > textsize.XXXLarge
}

// ViewModel is the fully derived content of one frame.
type ViewModel struct {
	Title    string
	Layout   Layout
	Tall     bool
	Amount   components.AmountView
	Tip      components.SelectorView
	Total    components.TotalView
	ShowDone bool
}

// Render derives the frame for state at the given text size. It has no side
// effects.
func Render(state State, size textsize.Size, format locale.Formatter) ViewModel {
	bill := state.Bill()

	options := make([]components.OptionView, 0, len(tip.Percentages()))
	for _, p := range tip.Percentages() {
		options = append(options, components.OptionView{
			Label:      tip.Label(p),
			Percentage: p,
			Selected:   p == state.TipPercentage,
		})
	}

	return ViewModel{
		Title:  Title,
		Layout: LayoutFor(size),
		Tall:   TallCards(size),
		Amount: components.AmountView{
			Label:   components.AmountLabel,
			Text:    format.Format(state.CheckAmount),
			Focused: state.Focused,
		},
		Tip: components.SelectorView{
			Label:   components.TipLabel,
			Options: options,
		},
		Total: components.TotalView{
			Label:   components.TotalLabel,
			Text:    format.Format(bill.CheckTotal()),
			TipText: format.Format(bill.TipTotal()),
			Color:   bill.Color(),
		},
		ShowDone: state.Focused,
	}
}
