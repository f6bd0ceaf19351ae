package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubble Tea messages and advances the state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.MouseMsg:
		vm := m.frame()
		if vm.Layout != LayoutExpanded {
			return m, nil
		}
		m.viewport = m.prepareViewport(vm)
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if m.state.Focused {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m.quit()
	case key.Matches(msg, m.keys.Done):
		m.amount.Blur()
		m.state = m.state.WithFocus(false)
		m.log.Debug("amount committed", "amount", m.state.CheckAmount)
		return m, nil
	}

	var cmd tea.Cmd
	m.amount, cmd = m.amount.Update(msg)
	m.state = m.state.WithAmount(m.amount.Amount())
	return m, cmd
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Edit):
		cmd := m.amount.Focus()
		m.state = m.state.WithFocus(true)
		return m, cmd
	case key.Matches(msg, m.keys.Left):
		return m.shift(-1), nil
	case key.Matches(msg, m.keys.Right):
		return m.shift(1), nil
	}

	vm := m.frame()
	if vm.Layout != LayoutExpanded {
		return m, nil
	}
	m.viewport = m.prepareViewport(vm)
	switch {
	case key.Matches(msg, m.keys.Up):
		m.viewport.SetYOffset(m.viewport.YOffset - 1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.SetYOffset(m.viewport.YOffset + 1)
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
	}
	return m, nil
}

func (m Model) shift(delta int) Model {
	before := m.state.TipPercentage
	m.state = m.state.ShiftSelection(delta)
	if m.state.TipPercentage != before {
		m.log.Debug("tip percentage selected", "percentage", m.state.TipPercentage)
	}
	return m
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.amount.Blur()
	return m, tea.Quit
}
