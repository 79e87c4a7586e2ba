// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// tokenFormModel is the masked bearer token input.
type tokenFormModel struct {
	input      textinput.Model
	submitting bool
}

func newTokenFormModel() tokenFormModel {
	input := textinput.New()
	input.Placeholder = "Bearer token"
	input.Width = 50
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return tokenFormModel{input: input}
}

func (m tokenFormModel) update(msg tea.Msg) (tokenFormModel, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m tokenFormModel) view(t theme) string {
	out := t.title.Render("Authenticate") + "\n\n"
	out += "Token: [" + m.input.View() + "]\n"
	if m.submitting {
		out += "\n" + t.muted.Render("Checking token...") + "\n"
	}
	return out
}
