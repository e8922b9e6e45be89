package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	submit    key.Binding
	quit      key.Binding
	logout    key.Binding
	delete    key.Binding
	posts     key.Binding
	refresh   key.Binding
	like      key.Binding
	unlike    key.Binding
	newPost   key.Binding
	comment   key.Binding
	uncomment key.Binding
	copy      key.Binding
	remove    key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	submit:    key.NewBinding(key.WithKeys("ctrl+s")),
	quit:      key.NewBinding(key.WithKeys("q")),
	logout:    key.NewBinding(key.WithKeys("o")),
	delete:    key.NewBinding(key.WithKeys("d", "delete")),
	posts:     key.NewBinding(key.WithKeys("p")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	like:      key.NewBinding(key.WithKeys("l")),
	unlike:    key.NewBinding(key.WithKeys("u")),
	newPost:   key.NewBinding(key.WithKeys("n")),
	comment:   key.NewBinding(key.WithKeys("c")),
	uncomment: key.NewBinding(key.WithKeys("x")),
	copy:      key.NewBinding(key.WithKeys("y")),
	remove:    key.NewBinding(key.WithKeys("ctrl+d")),
}
