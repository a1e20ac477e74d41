package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down        key.Binding
	Open, Parent    key.Binding
	Back, Forward   key.Binding
	Refresh         key.Binding
	Toggle, All     key.Binding
	Clear           key.Binding
	NewFolder       key.Binding
	Rename, Delete  key.Binding
	Copy, Reveal    key.Binding
	Search          key.Binding
	Sort, Order     key.Binding
	View            key.Binding
	Home, Desktop   key.Binding
	Docs, Downloads key.Binding
	Help, Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:      key.NewBinding(key.WithKeys("enter", "l"), key.WithHelp("enter", "open")),
		Parent:    key.NewBinding(key.WithKeys("backspace", "u"), key.WithHelp("⌫/u", "parent")),
		Back:      key.NewBinding(key.WithKeys("h", "alt+left"), key.WithHelp("h", "back")),
		Forward:   key.NewBinding(key.WithKeys("L", "alt+right"), key.WithHelp("L", "forward")),
		Refresh:   key.NewBinding(key.WithKeys("ctrl+r", "R"), key.WithHelp("R", "refresh")),
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		All:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		Clear:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		NewFolder: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new folder")),
		Rename:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		Delete:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Copy:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy to")),
		Reveal:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "show in folder")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Sort:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort field")),
		Order:     key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "sort order")),
		View:      key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "list/grid")),
		Home:      key.NewBinding(key.WithKeys("1", "~"), key.WithHelp("1", "home")),
		Desktop:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "desktop")),
		Docs:      key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "documents")),
		Downloads: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "downloads")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Parent, k.Back, k.Toggle, k.NewFolder, k.Delete, k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Parent, k.Back, k.Forward, k.Refresh},
		{k.Toggle, k.All, k.Clear, k.NewFolder, k.Rename, k.Delete, k.Copy, k.Reveal},
		{k.Search, k.Sort, k.Order, k.View, k.Home, k.Desktop, k.Docs, k.Downloads},
		{k.Help, k.Quit},
	}
}
