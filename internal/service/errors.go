// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Local validation errors, returned before any network call.
var (
	ErrEmptyToken        = errors.New("empty token")
	ErrTitleRequired     = errors.New("title is required")
	ErrNothingToUpdate   = errors.New("nothing to update")
	ErrTokenRequired     = errors.New("authentication token is required")
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrNotPermitted      = errors.New("operation not permitted for this tier")
	ErrInvalidBundle     = errors.New("invalid import bundle")
	ErrInvalidImportFile = errors.New("invalid import file")
	ErrCancelled         = errors.New("cancelled by user")
	ErrTodoNotFound      = errors.New("todo not found in current list")
)

// Remote and local persistence failures.
var (
	// ErrUnauthorized wraps a 401/403 from the todo API.
	ErrUnauthorized = errors.New("unauthorized")

	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrLoadTodos            = errors.New("failed to load todos")
	ErrAddTodo              = errors.New("failed to add todo")
	ErrUpdateTodo           = errors.New("failed to update todo")
	ErrDeleteTodo           = errors.New("failed to delete todo")
	ErrTogglePrivateMode    = errors.New("failed to toggle private mode")
	ErrSaveSettings         = errors.New("failed to save settings")
	ErrExportTodos          = errors.New("failed to export todos")
	ErrImportTodos          = errors.New("failed to import todos")
)
