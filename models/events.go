// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Event is a state change published by the todo client to its subscribers.
type Event interface {
	EventName() string
}

// TodosReplaced carries the full list that replaces whatever was shown.
type TodosReplaced struct {
	Todos []Todo
}

// TodosUnavailable replaces the list with an explanatory message.
type TodosUnavailable struct {
	Message string
	// Unauthorized is set when the server refused the read (401/403) or the
	// session is not signed in.
	Unauthorized bool
}

// StatusPosted is a transient banner message.
type StatusPosted struct {
	Status
}

// PrivateModeChanged sets the private mode control, also used to revert it.
type PrivateModeChanged struct {
	Enabled bool
}

// ThemeChanged switches between the dark and light palettes.
type ThemeChanged struct {
	Dark bool
}

// SessionChanged reflects the token and authentication state.
type SessionChanged struct {
	Authenticated bool
	HasToken      bool
	ExpiresAt     *time.Time
}

// FormCleared asks the renderer to empty the add form.
type FormCleared struct{}

// ExportSaved reports where a downloaded export was written.
type ExportSaved struct {
	Path string
}

func (TodosReplaced) EventName() string      { return "todos_replaced" }
func (TodosUnavailable) EventName() string   { return "todos_unavailable" }
func (StatusPosted) EventName() string       { return "status_posted" }
func (PrivateModeChanged) EventName() string { return "private_mode_changed" }
func (ThemeChanged) EventName() string       { return "theme_changed" }
func (SessionChanged) EventName() string     { return "session_changed" }
func (FormCleared) EventName() string        { return "form_cleared" }
func (ExportSaved) EventName() string        { return "export_saved" }
