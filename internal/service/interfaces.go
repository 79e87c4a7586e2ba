// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-todo-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Confirmer is the synchronous yes/no gate consulted before destructive
// operations. It blocks until the user answers or ctx is done; a cancelled
// context counts as "no".
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// ConfirmFunc adapts a plain function to [Confirmer].
type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool {
	return f(ctx, prompt)
}

// TodoClient keeps the local session, the remote todo list and the local
// settings consistent for one client tier. Every operation reports its
// outcome both as a returned error and as published events; local
// validation failures return before any network call.
type TodoClient interface {
	// Start restores the persisted theme and token, re-probes the token and
	// loads the list.
	Start(ctx context.Context) error

	// Authenticate probes the candidate token and persists it on success.
	Authenticate(ctx context.Context, candidate string) error
	// Logout forgets the token locally.
	Logout(ctx context.Context) error

	// LoadTodos replaces the list with the server's current one.
	LoadTodos(ctx context.Context) error
	// AddTodo creates a todo from the add form.
	AddTodo(ctx context.Context, title, description string) error
	// UpdateTodo sends a partial update.
	UpdateTodo(ctx context.Context, id int64, upd models.TodoUpdate) error
	// ToggleCompleted flips the completed flag of a todo in the current list.
	ToggleCompleted(ctx context.Context, id int64) error
	// DeleteTodo removes a todo after confirmation.
	DeleteTodo(ctx context.Context, id int64) error

	// TogglePrivateMode asks the server to switch private mode.
	TogglePrivateMode(ctx context.Context, desired bool) error
	// ToggleDarkMode switches and persists the local theme.
	ToggleDarkMode(ctx context.Context, desired bool) error

	// ExportTodos downloads the bundle and returns where it was saved.
	ExportTodos(ctx context.Context) (string, error)
	// ImportTodos validates and uploads a raw bundle after confirmation and
	// returns the number of imported todos.
	ImportTodos(ctx context.Context, contents []byte) (int, error)
	// ImportTodosFromFile reads a ".json" bundle file and imports it.
	ImportTodosFromFile(ctx context.Context, path string) (int, error)

	// Session returns a snapshot of the session state.
	Session() models.Session
	// Todos returns a copy of the last loaded list.
	Todos() []models.Todo
	// Tier returns the client variant.
	Tier() models.Tier
	// Subscribe registers a listener and returns its unsubscribe function.
	// Listeners are called synchronously on the goroutine running the
	// operation and must not call back into the client.
	Subscribe(listener func(models.Event)) (unsubscribe func())
}
