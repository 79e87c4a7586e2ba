// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-todo-client/models"
)

const (
	FieldTitle   = "title"
	FieldChanges = "changes"
)

// TodoValidator checks todo input before it is sent to the server.
type TodoValidator struct {
}

func NewTodoValidator() Validator {
	return &TodoValidator{}
}

func (v *TodoValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateTodoRequest:
		return v.validateCreate(value, fields...)
	case *models.CreateTodoRequest:
		return v.validateCreate(*value, fields...)

	case models.TodoUpdate:
		return v.validateUpdate(value, fields...)
	case *models.TodoUpdate:
		return v.validateUpdate(*value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *TodoValidator) validateCreate(req models.CreateTodoRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle}
	}

	for _, field := range fields {
		switch field {
		case FieldTitle:
			if strings.TrimSpace(req.Title) == "" {
				return ErrEmptyTitle
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *TodoValidator) validateUpdate(upd models.TodoUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldChanges, FieldTitle}
	}

	for _, field := range fields {
		switch field {
		case FieldChanges:
			if upd.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldTitle:
			// a title is optional in an update, but never blank
			if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
				return ErrEmptyTitle
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
