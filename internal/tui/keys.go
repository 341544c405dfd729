package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding the page reacts to.
type keyMap struct {
	NextSection key.Binding
	PrevSection key.Binding
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	BigLeft     key.Binding
	BigRight    key.Binding
	Home        key.Binding
	End         key.Binding
	Open        key.Binding
	Toggle      key.Binding
	Close       key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		NextSection: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
		PrevSection: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev section")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "decrease")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "increase")),
		BigLeft:     key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "-10")),
		BigRight:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "+10")),
		Home:        key.NewBinding(key.WithKeys("home", "g")),
		End:         key.NewBinding(key.WithKeys("end", "G")),
		Open:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Toggle:      key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "toggle")),
		Close:       key.NewBinding(key.WithKeys("esc", "x"), key.WithHelp("esc/x", "close")),
		ScrollUp:    key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "scroll up")),
		ScrollDown:  key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "scroll down")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.Up, k.Down, k.Open, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextSection, k.PrevSection, k.ScrollUp, k.ScrollDown},
		{k.Up, k.Down, k.Left, k.Right, k.BigRight, k.BigLeft},
		{k.Open, k.Toggle, k.Close},
		{k.Help, k.Quit},
	}
}
