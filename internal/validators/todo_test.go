// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-todo-client/models"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestTodoValidator_Validate(t *testing.T) {
	v := NewTodoValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{name: "create ok", obj: models.CreateTodoRequest{Title: "Buy milk"}},
		{name: "create pointer ok", obj: &models.CreateTodoRequest{Title: "x"}},
		{name: "create blank title", obj: models.CreateTodoRequest{Title: "   "}, wantErr: ErrEmptyTitle},
		{name: "create unknown field", obj: models.CreateTodoRequest{Title: "x"}, fields: []string{"due"}, wantErr: ErrUnknownField},
		{name: "update completed only", obj: models.CompletedUpdate(true)},
		{name: "update empty", obj: models.TodoUpdate{}, wantErr: ErrNoFieldsToUpdate},
		{name: "update blank title", obj: models.TodoUpdate{Title: strPtr(" ")}, wantErr: ErrEmptyTitle},
		{name: "update description only", obj: &models.TodoUpdate{Description: strPtr("")}},
		{name: "unsupported type", obj: 42, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
