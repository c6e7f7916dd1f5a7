// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	version   key.Binding
	logout    key.Binding
	refresh   key.Binding
	protocol  key.Binding
	platform  key.Binding
	copy      key.Binding
	provision key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter", "d")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	version:   key.NewBinding(key.WithKeys("v")),
	logout:    key.NewBinding(key.WithKeys("l")),
	refresh:   key.NewBinding(key.WithKeys("s")),
	protocol:  key.NewBinding(key.WithKeys("p")),
	platform:  key.NewBinding(key.WithKeys("o")),
	copy:      key.NewBinding(key.WithKeys("c")),
	provision: key.NewBinding(key.WithKeys("r")),
}
