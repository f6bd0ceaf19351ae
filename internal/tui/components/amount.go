package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tipper/internal/tip"
)

const (
	// AmountLabel is the caption above the check amount.
	AmountLabel = "Original Check Amount"
	// AmountPlaceholder is shown while the focused field is empty.
	AmountPlaceholder = "Enter check amount here"

	amountCharLimit = 12
	amountWidth     = 22
)

// AmountView describes how the amount card should look.
type AmountView struct {
	Label   string
	Text    string
	Focused bool
}

// AmountInput is the editable check amount. It only admits digits and a
// single decimal point.
type AmountInput struct {
	input textinput.Model
}

// NewAmountInput builds an unfocused input whose prompt is the currency symbol.
func NewAmountInput(symbol string) AmountInput {
	ti := textinput.New()
	ti.Placeholder = AmountPlaceholder
	ti.CharLimit = amountCharLimit
	ti.Width = amountWidth
	ti.PromptStyle = valueStyle
	ti.TextStyle = valueStyle
	ti.PlaceholderStyle = placeholderStyle
	ti.KeyMap.Paste.SetEnabled(false)

	a := AmountInput{input: ti}
	a.SetSymbol(symbol)
	return a
}

// SetSymbol changes the currency symbol shown before the digits.
func (a *AmountInput) SetSymbol(symbol string) {
	if symbol == "" {
		a.input.Prompt = ""
		return
	}
	a.input.Prompt = symbol + " "
}

// Focus claims input focus.
func (a *AmountInput) Focus() tea.Cmd {
	return a.input.Focus()
}

// Blur releases input focus.
func (a *AmountInput) Blur() {
	a.input.Blur()
}

// Focused reports whether the field has focus.
func (a AmountInput) Focused() bool {
	return a.input.Focused()
}

// Value returns the raw text in the field.
func (a AmountInput) Value() string {
	return a.input.Value()
}

// SetValue replaces the raw text, dropping anything a user could not type.
func (a *AmountInput) SetValue(s string) {
	a.input.SetValue(string(AcceptRunes("", []rune(s))))
}

// Amount parses the field. Empty text is zero.
func (a AmountInput) Amount() float64 {
	amount, err := tip.ParseAmount(a.input.Value())
	if err != nil {
		return 0
	}
	return amount
}

// Update forwards msg to the text field after filtering typed runes.
func (a AmountInput) Update(msg tea.Msg) (AmountInput, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeySpace:
			return a, nil
		case tea.KeyRunes:
			runes := AcceptRunes(a.input.Value(), keyMsg.Runes)
			if len(runes) == 0 {
				return a, nil
			}
			keyMsg.Runes = runes
			msg = keyMsg
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// View renders the amount card. The raw field is shown while editing,
// otherwise the formatted amount.
func (a AmountInput) View(v AmountView, opts CardOptions) string {
	body := valueStyle.Render(v.Text)
	if v.Focused {
		body = a.input.View()
	}
	return Card(v.Label, body, opts)
}

// AcceptRunes returns the subset of runes that may be appended to current:
// digits, and one decimal point if current has none.
func AcceptRunes(current string, runes []rune) []rune {
	seenPoint := false
	for _, r := range current {
		if r == '.' {
			seenPoint = true
			break
		}
	}

	accepted := make([]rune, 0, len(runes))
	for _, r := range runes {
		switch {
		case r >= '0' && r <= '9':
			accepted = append(accepted, r)
		case r == '.' && !seenPoint:
			seenPoint = true
			accepted = append(accepted, r)
		}
	}
	return accepted
}
