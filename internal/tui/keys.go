// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-todo-client/models"
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	up          key.Binding
	down        key.Binding
	reload      key.Binding
	add         key.Binding
	edit        key.Binding
	toggle      key.Binding
	delete      key.Binding
	privateMode key.Binding
	theme       key.Binding
	token       key.Binding
	logout      key.Binding
	export      key.Binding
	importFile  key.Binding
	copy        key.Binding
	info        key.Binding
	quit        key.Binding

	submit key.Binding
	cancel key.Binding
	next   key.Binding
	prev   key.Binding
	yes    key.Binding
	no     key.Binding
	forceQ key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	reload:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	add:         key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	edit:        key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	toggle:      key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "complete/undo")),
	delete:      key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
	privateMode: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "private mode")),
	theme:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "dark/light")),
	token:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "token")),
	logout:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "logout")),
	export:      key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "export")),
	importFile:  key.NewBinding(key.WithKeys("I"), key.WithHelp("I", "import")),
	copy:        key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
	info:        key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "about")),
	quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),

	submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	prev:   key.NewBinding(key.WithKeys("shift+tab")),
	yes:    key.NewBinding(key.WithKeys("y", "Y", "enter"), key.WithHelp("y", "yes")),
	no:     key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
	forceQ: key.NewBinding(key.WithKeys("ctrl+c")),
}

// listHelp returns the list screen bindings the tier may use.
func (k keyMap) listHelp(caps models.Capabilities) []key.Binding {
	bindings := []key.Binding{k.up, k.down, k.reload}

	if caps.CanWrite {
		bindings = append(bindings, k.add, k.edit, k.toggle, k.delete)
	}
	if caps.CanToggleMode {
		bindings = append(bindings, k.privateMode)
	}
	if caps.UsesToken {
		bindings = append(bindings, k.token, k.logout)
	}
	if caps.CanImportExport {
		bindings = append(bindings, k.export, k.importFile)
	}

	return append(bindings, k.copy, k.theme, k.info, k.quit)
}

func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{k.submit, k.next, k.cancel}
}

func (k keyMap) inputHelp() []key.Binding {
	return []key.Binding{k.submit, k.cancel}
}

func (k keyMap) confirmHelp() []key.Binding {
	return []key.Binding{k.yes, k.no}
}
