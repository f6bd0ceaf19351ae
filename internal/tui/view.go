package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tipper/internal/tui/components"
)

// View renders the current frame. The text size is read once per call so a
// changed preference shows up on the next render.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	vm := m.frame()
	body := m.cards(vm)
	if vm.Layout == LayoutExpanded {
		vp := m.prepareViewport(vm)
		body = vp.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.header(vm), body, m.footer(vm))
}

func (m Model) frame() ViewModel {
	return Render(m.state, m.textSize.Current(), m.formatter)
}

func (m Model) header(vm ViewModel) string {
	return titleStyle.Render(vm.Title)
}

func (m Model) footer(vm ViewModel) string {
	return footerStyle.Render(m.help.ShortHelpView(m.keys.shortHelp(vm)))
}

func (m Model) cardOptions(vm ViewModel) components.CardOptions {
	width := m.width
	if width <= 0 || width > maxCardWidth {
		width = maxCardWidth
	}
	return components.CardOptions{Width: width, Tall: vm.Tall}
}

func (m Model) cards(vm ViewModel) string {
	opts := m.cardOptions(vm)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.amount.View(vm.Amount, opts),
		m.selector.View(vm.Tip, opts),
		m.total.View(vm.Total, opts),
	)
}

// prepareViewport sizes the viewport to the space left by the header and
// footer and loads the cards, keeping the scroll offset.
func (m Model) prepareViewport(vm ViewModel) viewport.Model {
	vp := m.viewport
	chrome := lipgloss.Height(m.header(vm)) + lipgloss.Height(m.footer(vm))
	height := m.height - chrome
	if height < 1 {
		height = 1
	}
	vp.Width = m.width
	vp.Height = height
	vp.SetContent(m.cards(vm))
	return vp
}
