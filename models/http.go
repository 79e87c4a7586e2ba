// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateTodoRequest is the body of POST /api/todos.
type CreateTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PrivateModeRequest is the body of POST /api/private-mode.
type PrivateModeRequest struct {
	Enabled bool `json:"enabled"`
}

// ExportFile is the raw result of GET /api/todos/export.
type ExportFile struct {
	// FileName is the name suggested by the Content-Disposition header, or
	// the default export name when the header is absent.
	FileName string

	// Body is the unmodified response payload.
	Body []byte
}
