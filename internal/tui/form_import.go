// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// importFormModel asks for the path of a bundle file to import.
type importFormModel struct {
	input      textinput.Model
	submitting bool
}

func newImportFormModel() importFormModel {
	input := textinput.New()
	input.Placeholder = "todos_export.json"
	input.Width = 60
	input.Focus()

	return importFormModel{input: input}
}

func (m importFormModel) update(msg tea.Msg) (importFormModel, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m importFormModel) view(t theme) string {
	out := t.title.Render("Import todos") + "\n\n"
	out += "File: [" + m.input.View() + "]\n\n"
	out += t.muted.Render("Importing replaces every existing todo.") + "\n"
	return out
}
