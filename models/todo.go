// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Todo is a single item of the remote todo list.
//
// ID is assigned by the server on creation and never changes afterwards.
// The client treats every Todo it holds as a read-only snapshot: changes are
// sent to the server and the list is fetched again.
type Todo struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// Title is the required, non-empty headline of the item.
	Title string `json:"title"`

	// Description is optional free text and may be empty.
	Description string `json:"description"`

	// Completed reports whether the item is done. Defaults to false.
	Completed bool `json:"completed"`

	// CreatedAt and UpdatedAt are ISO-8601 timestamps reported by the server.
	// They are kept for display only.
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// TodoUpdate is a partial update for a single Todo. Only non-nil fields are
// sent to the server.
type TodoUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u TodoUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Completed == nil
}

// CompletedUpdate builds a TodoUpdate that only sets the completed flag.
func CompletedUpdate(completed bool) TodoUpdate {
	return TodoUpdate{Completed: &completed}
}
