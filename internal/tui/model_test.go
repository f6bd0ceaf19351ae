package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tipper/internal/locale"
	"github.com/alexisbeaulieu97/tipper/internal/textsize"
	"github.com/alexisbeaulieu97/tipper/internal/tui/components"
)

func newTestModel(size textsize.Size) Model {
	return NewModel(Options{
		DefaultTip: 20,
		TextSize:   textsize.Static(size),
		Formatter:  locale.DefaultFormatter(),
	})
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typed(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, runes(string(r)))
	}
	return msgs
}

func TestNewModelDefaults(t *testing.T) {
	t.Parallel()

	m := NewModel(Options{DefaultTip: 25})
	require.Equal(t, 25, m.State().TipPercentage)
	require.Equal(t, defaultWidth, m.width)
	require.Equal(t, defaultHeight, m.height)
	require.Nil(t, m.Init())
	require.Contains(t, m.View(), components.AmountLabel)
	require.Contains(t, m.View(), "$ 0.00")
	require.NotContains(t, m.View(), "XXX")
}

func TestModelEntersAmountAndShowsTotals(t *testing.T) {
	t.Parallel()

	m := newTestModel(textsize.Large)
	m = send(t, m, runes("e"))
	require.True(t, m.State().Focused)

	m = send(t, m, typed("100")...)
	require.InDelta(t, 100.0, m.State().CheckAmount, 1e-9)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, m.State().Focused)

	view := m.View()
	require.Contains(t, view, "$ 100.00")
	require.Contains(t, view, "$ 120.00")
	require.Contains(t, view, "Tip: $ 20.00")
	require.Contains(t, view, "[20%]")
}

func TestModelUpdatesAmountOnEveryEdit(t *testing.T) {
	t.Parallel()

	m := send(t, newTestModel(textsize.Large), tea.KeyMsg{Type: tea.KeyTab})
	m = send(t, m, runes("4"))
	require.InDelta(t, 4.0, m.State().CheckAmount, 1e-9)
	m = send(t, m, runes("0"))
	require.InDelta(t, 40.0, m.State().CheckAmount, 1e-9)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace})
	require.Zero(t, m.State().CheckAmount)
}

func TestModelFiltersAmountInput(t *testing.T) {
	t.Parallel()

	m := send(t, newTestModel(textsize.Large), runes("e"))
	m = send(t, m, typed("1a2.-5.0q")...)
	require.InDelta(t, 12.5, m.State().CheckAmount, 1e-9)
	require.True(t, m.State().Focused, "letters must not leave the field")
	require.False(t, m.Quitting())
}

func TestModelDoneReleasesFocus(t *testing.T) {
	t.Parallel()

	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEnter}, {Type: tea.KeyEsc}, {Type: tea.KeyTab}} {
		m := send(t, newTestModel(textsize.Large), runes("e"))
		require.Contains(t, m.View(), "done")

		m = send(t, m, msg)
		require.False(t, m.State().Focused, msg.String())
		require.NotContains(t, m.View(), "done")
	}
}

func TestModelSelectorMovesAndClamps(t *testing.T) {
	t.Parallel()

	m := newTestModel(textsize.Large)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 25, m.State().TipPercentage)
	m = send(t, m, runes("l"), runes("l"), runes("l"))
	require.Equal(t, 30, m.State().TipPercentage)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft}, runes("h"))
	require.Equal(t, 20, m.State().TipPercentage)
	m = send(t, m, typed("hhhhhhh")...)
	require.Equal(t, 0, m.State().TipPercentage)
	require.Contains(t, m.View(), "[0%]")
}

func TestModelSelectorIgnoredWhileEditing(t *testing.T) {
	t.Parallel()

	m := send(t, newTestModel(textsize.Large), runes("e"), tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 20, m.State().TipPercentage)
}

func TestModelScenarioColors(t *testing.T) {
	t.Parallel()

	m := send(t, newTestModel(textsize.Large), runes("e"))
	m = send(t, m, typed("40")...)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, runes("h"), runes("h"))
	require.Equal(t, 10, m.State().TipPercentage)

	vm := m.frame()
	require.Equal(t, "$ 44.00", vm.Total.Text)
	require.Equal(t, "$ 4.00", vm.Total.TipText)
}

func TestModelQuit(t *testing.T) {
	t.Parallel()

	m := newTestModel(textsize.Large)
	updated, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	m = updated.(Model)
	require.True(t, m.Quitting())
	require.Empty(t, m.View())

	m = send(t, newTestModel(textsize.Large), runes("e"))
	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.True(t, updated.(Model).Quitting())
}

func TestModelCompactLayoutDoesNotScroll(t *testing.T) {
	t.Parallel()

	m := send(t, newTestModel(textsize.Large), tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyPgDown})
	require.Zero(t, m.viewport.YOffset)

	view := m.View()
	require.Contains(t, view, components.AmountLabel)
	require.Contains(t, view, components.TotalLabel)
	require.NotContains(t, view, "scroll")
}

func TestModelExpandedLayoutScrolls(t *testing.T) {
	t.Parallel()

	m := send(t, newTestModel(textsize.Accessibility3), tea.WindowSizeMsg{Width: 80, Height: 12})
	require.Contains(t, m.View(), "scroll")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 1, m.viewport.YOffset)

	m = send(t, m, runes("k"))
	require.Zero(t, m.viewport.YOffset)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyPgDown}, tea.KeyMsg{Type: tea.KeyPgDown})
	require.Positive(t, m.viewport.YOffset)
	require.Contains(t, m.View(), components.TotalLabel)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyPgUp}, tea.KeyMsg{Type: tea.KeyPgUp})
	require.Zero(t, m.viewport.YOffset)
	require.Contains(t, m.View(), components.AmountLabel)
}

func TestModelFollowsTextSizeChanges(t *testing.T) {
	t.Parallel()

	env := map[string]string{}
	source := textsize.EnvSource{
		Key:      textsize.EnvKey,
		Fallback: textsize.Large,
		Lookup: func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		},
	}
	m := NewModel(Options{DefaultTip: 20, TextSize: source, Formatter: locale.DefaultFormatter()})
	require.Equal(t, LayoutCompact, m.frame().Layout)

	env[textsize.EnvKey] = "accessibility1"
	require.Equal(t, LayoutExpanded, m.frame().Layout)
	require.Contains(t, m.View(), "scroll")

	env[textsize.EnvKey] = "xSmall"
	require.Equal(t, LayoutCompact, m.frame().Layout)
}

func TestModelWindowSize(t *testing.T) {
	t.Parallel()

	m := send(t, newTestModel(textsize.Large), tea.WindowSizeMsg{Width: 40, Height: 30})
	require.Equal(t, 40, m.width)
	require.Equal(t, 30, m.height)

	for _, line := range strings.Split(m.cards(m.frame()), "\n") {
		require.LessOrEqual(t, len([]rune(line)), 40)
	}
}
