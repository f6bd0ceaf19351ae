package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Edit     key.Binding
	Done     key.Binding
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Edit:     key.NewBinding(key.WithKeys("tab", "e", "i", "enter"), key.WithHelp("e", "edit amount")),
		Done:     key.NewBinding(key.WithKeys("enter", "esc", "tab"), key.WithHelp("enter", "done")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "less tip")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "more tip")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "scroll")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// shortHelp lists the bindings relevant to the current frame.
func (k keyMap) shortHelp(vm ViewModel) []key.Binding {
	if vm.ShowDone {
		return []key.Binding{k.Done}
	}
	bindings := []key.Binding{k.Edit, k.Left, k.Right}
	if vm.Layout == LayoutExpanded {
		bindings = append(bindings, k.Up)
	}
	return append(bindings, k.Quit)
}
