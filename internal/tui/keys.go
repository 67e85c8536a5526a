// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	interrupt    key.Binding
	about        key.Binding
	enter        key.Binding
	esc          key.Binding
	quit         key.Binding
	reload       key.Binding
	lock         key.Binding
	reveal       key.Binding
	copyPassword key.Binding
	copyUsername key.Binding
	copyEmail    key.Binding
}

var keys = keyMap{
	interrupt:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "exit")),
	about:        key.NewBinding(key.WithKeys("f1"), key.WithHelp("F1", "about")),
	enter:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	esc:          key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	quit:         key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	reload:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	lock:         key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "lock")),
	reveal:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "show/hide")),
	copyPassword: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy password")),
	copyUsername: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "copy username")),
	copyEmail:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "copy email")),
}

// hotKeys renders bindings as "key: help" pairs for the page footer.
func hotKeys(bindings ...key.Binding) string {
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += " │ "
		}
		h := b.Help()
		out += h.Key + ": " + h.Desc
	}
	return out
}
