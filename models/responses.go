// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TodoListResponse is the body of a successful GET /api/todos.
type TodoListResponse struct {
	Todos []Todo `json:"todos"`
}

// PrivateModeResponse is returned by both GET and POST /api/private-mode.
type PrivateModeResponse struct {
	PrivateMode bool   `json:"private_mode"`
	Message     string `json:"message,omitempty"`
}

// ImportResponse is the body of a successful POST /api/todos/import.
type ImportResponse struct {
	ImportedCount int `json:"imported_count"`
}

// ErrorResponse is the error body the todo API uses for non-2xx answers.
type ErrorResponse struct {
	Message string `json:"message"`
}
