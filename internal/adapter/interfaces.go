// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the todo REST API.
//
// The primary abstraction is [TodoAPI], which decouples the service layer
// from HTTP. The package ships a resty-based implementation
// ([NewHTTPTodoAPI]).
//
// Non-2xx responses are mapped by mapHTTPError to a [*ResponseError] that
// unwraps to one of the sentinels in errors.go, so callers can use
// [errors.Is] (e.g. [ErrUnauthorized] for 401) and [ServerMessage] to read
// the server's {"message": ...} body.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-todo-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/todo_api_mock.go -package=mock

// TodoAPI is the remote todo service. Every method takes the bearer token
// explicitly; an empty token sends no Authorization header.
type TodoAPI interface {
	// ListTodos fetches GET /api/todos.
	ListTodos(ctx context.Context, token string) ([]models.Todo, error)

	// CreateTodo posts a new todo and returns the server's created record.
	CreateTodo(ctx context.Context, token string, req models.CreateTodoRequest) (models.Todo, error)

	// UpdateTodo sends a partial update to PUT /api/todos/{id}.
	UpdateTodo(ctx context.Context, token string, id int64, upd models.TodoUpdate) error

	// DeleteTodo removes the todo with the given id.
	DeleteTodo(ctx context.Context, token string, id int64) error

	// GetPrivateMode reads the private mode flag. It doubles as the token
	// probe: it succeeds only for an accepted token.
	GetPrivateMode(ctx context.Context, token string) (bool, error)

	// SetPrivateMode requests a new private mode value and returns the value
	// the server adopted.
	SetPrivateMode(ctx context.Context, token string, enabled bool) (bool, error)

	// ExportTodos downloads the full bundle as an opaque file.
	ExportTodos(ctx context.Context, token string) (models.ExportFile, error)

	// ImportTodos forwards a raw bundle and returns the imported count.
	ImportTodos(ctx context.Context, token string, bundle json.RawMessage) (int, error)
}
