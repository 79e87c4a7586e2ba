// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-todo-client/internal/adapter"
	"github.com/MKhiriev/go-todo-client/internal/app"
	"github.com/MKhiriev/go-todo-client/internal/utils"
	"github.com/MKhiriev/go-todo-client/internal/validators"
	"github.com/MKhiriev/go-todo-client/models"
)

// unauthorizedListMessages returns the list placeholder and the status line
// shown when the server refuses to list todos.
func (c *todoClient) unauthorizedListMessages() (placeholder, status string) {
	switch c.tier {
	case models.TierPublic:
		return app.MsgPublicPrivateMode, app.MsgPublicPrivateMode
	case models.TierApp:
		return app.MsgProvideValidToken, app.MsgAuthRequired
	default:
		return app.MsgAuthRequired, app.MsgAuthRequired
	}
}

// LoadTodos fetches the list once. Authorization failures are reported and
// never retried.
func (c *todoClient) LoadTodos(ctx context.Context) error {
	session := c.Session()

	if c.caps.RequiresAuthentication && !session.Authenticated {
		c.publish(models.TodosUnavailable{Message: app.MsgAuthRequired, Unauthorized: true})
		return nil
	}

	var token string
	if c.caps.UsesToken {
		token = session.Token
	}

	todos, err := c.api.ListTodos(ctx, token)
	if err != nil {
		c.logger.Err(err).
			Str("func", "todoClient.LoadTodos").
			Str("token_fp", utils.TokenFingerprint(token)).
			Msg("failed to load todos")

		if adapter.IsAuthError(err) {
			c.markUnauthorized()
			c.mu.Lock()
			c.todos = nil
			c.mu.Unlock()

			placeholder, status := c.unauthorizedListMessages()
			c.publish(models.TodosUnavailable{Message: placeholder, Unauthorized: true})
			c.postError(status)
			return mapAdapterError(ErrLoadTodos, err)
		}

		c.postError(app.MsgLoadFailed)
		return mapAdapterError(ErrLoadTodos, err)
	}

	if todos == nil {
		todos = []models.Todo{}
	}

	c.mu.Lock()
	c.todos = cloneTodos(todos)
	c.mu.Unlock()

	c.publish(models.TodosReplaced{Todos: cloneTodos(todos)})
	return nil
}

func (c *todoClient) AddTodo(ctx context.Context, title, description string) error {
	token, err := c.requireAccess(app.OpAddTodos, c.caps.CanWrite)
	if err != nil {
		return err
	}

	req := models.CreateTodoRequest{Title: strings.TrimSpace(title), Description: description}
	if err = c.todoValidator.Validate(ctx, req); err != nil {
		c.postError(app.MsgTitleRequired)
		return fmt.Errorf("%w: %w", ErrTitleRequired, err)
	}

	created, err := c.api.CreateTodo(ctx, token, req)
	if err != nil {
		c.handleRemoteError("todoClient.AddTodo", app.MsgTodoAddFailed, token, err)
		return mapAdapterError(ErrAddTodo, err)
	}
	c.logger.Debug().Str("func", "todoClient.AddTodo").Int64("id", created.ID).Msg("todo created")

	c.publish(models.FormCleared{})
	c.postSuccess(app.MsgTodoAdded)

	return c.LoadTodos(ctx)
}

func (c *todoClient) UpdateTodo(ctx context.Context, id int64, upd models.TodoUpdate) error {
	token, err := c.requireAccess(app.OpUpdateTodos, c.caps.CanWrite)
	if err != nil {
		return err
	}

	if upd.Title != nil {
		trimmed := strings.TrimSpace(*upd.Title)
		upd.Title = &trimmed
	}

	if err = c.todoValidator.Validate(ctx, upd); err != nil {
		if errors.Is(err, validators.ErrEmptyTitle) {
			c.postError(app.MsgTitleRequired)
			return fmt.Errorf("%w: %w", ErrTitleRequired, err)
		}
		c.postError(app.MsgTodoUpdateFailed)
		return fmt.Errorf("%w: %w", ErrNothingToUpdate, err)
	}

	if err = c.api.UpdateTodo(ctx, token, id, upd); err != nil {
		c.handleRemoteError("todoClient.UpdateTodo", app.MsgTodoUpdateFailed, token, err)
		return mapAdapterError(ErrUpdateTodo, err)
	}

	c.postSuccess(app.MsgTodoUpdated)
	return c.LoadTodos(ctx)
}

// ToggleCompleted flips the completed flag of a todo from the current list.
func (c *todoClient) ToggleCompleted(ctx context.Context, id int64) error {
	for _, todo := range c.Todos() {
		if todo.ID == id {
			return c.UpdateTodo(ctx, id, models.CompletedUpdate(!todo.Completed))
		}
	}

	c.postError(app.MsgTodoUpdateFailed)
	return fmt.Errorf("%w: id=%d", ErrTodoNotFound, id)
}

// DeleteTodo asks for confirmation first; a declined prompt sends nothing.
func (c *todoClient) DeleteTodo(ctx context.Context, id int64) error {
	token, err := c.requireAccess(app.OpDeleteTodos, c.caps.CanWrite)
	if err != nil {
		return err
	}

	if !c.confirmer.Confirm(ctx, app.MsgConfirmDelete) {
		return ErrCancelled
	}

	if err = c.api.DeleteTodo(ctx, token, id); err != nil {
		c.handleRemoteError("todoClient.DeleteTodo", app.MsgTodoDeleteFailed, token, err)
		return mapAdapterError(ErrDeleteTodo, err)
	}

	c.postSuccess(app.MsgTodoDeleted)
	return c.LoadTodos(ctx)
}
