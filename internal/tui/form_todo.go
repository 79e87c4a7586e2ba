// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-todo-client/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldTitle = iota
	fieldDescription
)

// todoFormModel backs both the add form and the edit form.
type todoFormModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	original   models.Todo
	submitting bool
}

func newTodoFormModel(item *models.Todo) todoFormModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[fieldTitle].Placeholder = "Title"
	inputs[fieldTitle].CharLimit = 200
	inputs[fieldDescription].Placeholder = "Description (optional)"
	inputs[fieldTitle].Focus()

	m := todoFormModel{inputs: inputs}
	if item == nil {
		return m
	}

	m.editing = true
	m.original = *item
	m.inputs[fieldTitle].SetValue(item.Title)
	m.inputs[fieldDescription].SetValue(item.Description)
	return m
}

func (m *todoFormModel) moveFocus(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m todoFormModel) update(msg tea.Msg) (todoFormModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m todoFormModel) values() (title, description string) {
	return m.inputs[fieldTitle].Value(), m.inputs[fieldDescription].Value()
}

// changes returns only the fields that differ from the edited todo.
func (m todoFormModel) changes() models.TodoUpdate {
	var upd models.TodoUpdate

	title, description := m.values()
	if title != m.original.Title {
		upd.Title = &title
	}
	if description != m.original.Description {
		upd.Description = &description
	}
	return upd
}

func (m todoFormModel) view(t theme) string {
	label := "New todo"
	if m.editing {
		label = "Edit: " + fitText(m.original.Title, 40)
	}

	out := t.title.Render(label) + "\n\n"
	out += "Title:       [" + m.inputs[fieldTitle].View() + "]\n"
	out += "Description: [" + m.inputs[fieldDescription].View() + "]\n"
	if m.submitting {
		out += "\n" + t.muted.Render("Saving...") + "\n"
	}
	return out
}
