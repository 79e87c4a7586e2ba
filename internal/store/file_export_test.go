// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportFileStorage_SaveExport(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		wantBase string
		wantErr  bool
	}{
		{name: "plain name", fileName: "todos_export.json", wantBase: "todos_export.json"},
		{name: "traversal is flattened", fileName: "../../etc/passwd", wantBase: "passwd"},
		{name: "empty name", fileName: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "exports")
			storage := NewExportFileStorage(dir)

			path, err := storage.SaveExport(context.Background(), tt.fileName, []byte(`{"todos":[]}`))
			if tt.wantErr {
				require.ErrorIs(t, err, ErrWritingFile)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, tt.wantBase), path)

			body, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.JSONEq(t, `{"todos":[]}`, string(body))
		})
	}
}

func TestExportFileStorage_ReadImportFile(t *testing.T) {
	dir := t.TempDir()
	storage := NewExportFileStorage(dir)
	ctx := context.Background()

	jsonPath := filepath.Join(dir, "bundle.JSON")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"next_id":2}`), 0o600))

	body, err := storage.ReadImportFile(ctx, jsonPath)
	require.NoError(t, err)
	assert.Equal(t, `{"next_id":2}`, string(body))

	_, err = storage.ReadImportFile(ctx, filepath.Join(dir, "bundle.txt"))
	require.ErrorIs(t, err, ErrNotJSONFile)

	_, err = storage.ReadImportFile(ctx, filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, ErrReadingFile)
}
