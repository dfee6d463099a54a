// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up     key.Binding
	down   key.Binding
	enter  key.Binding
	esc    key.Binding
	next   key.Binding
	prev   key.Binding
	quit   key.Binding
	list   key.Binding
	reload key.Binding
	copy   key.Binding
	info   key.Binding
}

var keys = keyMap{
	up:     key.NewBinding(key.WithKeys("up", "k")),
	down:   key.NewBinding(key.WithKeys("down", "j")),
	enter:  key.NewBinding(key.WithKeys("enter")),
	esc:    key.NewBinding(key.WithKeys("esc")),
	next:   key.NewBinding(key.WithKeys("tab", "down")),
	prev:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:   key.NewBinding(key.WithKeys("ctrl+c")),
	list:   key.NewBinding(key.WithKeys("ctrl+l")),
	reload: key.NewBinding(key.WithKeys("r")),
	copy:   key.NewBinding(key.WithKeys("ctrl+y")),
	info:   key.NewBinding(key.WithKeys("f1")),
}
