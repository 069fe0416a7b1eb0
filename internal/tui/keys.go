package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up           key.Binding
	down         key.Binding
	enter        key.Binding
	esc          key.Binding
	tab          key.Binding
	backtab      key.Binding
	quit         key.Binding
	forceQuit    key.Binding
	toggleMode   key.Binding
	copy         key.Binding
	reuse        key.Binding
	clearHistory key.Binding
	buildInfo    key.Binding
}

// Letter bindings (quit, buildInfo) only fire while the method selector is
// focused, so they never swallow typed text.
var keys = keyMap{
	up:           key.NewBinding(key.WithKeys("up", "k")),
	down:         key.NewBinding(key.WithKeys("down", "j")),
	enter:        key.NewBinding(key.WithKeys("enter")),
	esc:          key.NewBinding(key.WithKeys("esc")),
	tab:          key.NewBinding(key.WithKeys("tab")),
	backtab:      key.NewBinding(key.WithKeys("shift+tab")),
	quit:         key.NewBinding(key.WithKeys("q")),
	forceQuit:    key.NewBinding(key.WithKeys("ctrl+c")),
	toggleMode:   key.NewBinding(key.WithKeys("ctrl+t")),
	copy:         key.NewBinding(key.WithKeys("ctrl+y")),
	reuse:        key.NewBinding(key.WithKeys("ctrl+r")),
	clearHistory: key.NewBinding(key.WithKeys("ctrl+x")),
	buildInfo:    key.NewBinding(key.WithKeys("v")),
}
