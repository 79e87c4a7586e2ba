// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-todo-client/internal/logger"
)

// exportFileStorage is the filesystem implementation of [ExportFileStorage].
// Exports land in a single directory; the server-suggested name is reduced
// to its base so it cannot escape that directory.
type exportFileStorage struct {
	dir string
}

// NewExportFileStorage constructs an [ExportFileStorage] rooted at dir.
func NewExportFileStorage(dir string) ExportFileStorage {
	return &exportFileStorage{dir: dir}
}

func (e *exportFileStorage) SaveExport(ctx context.Context, fileName string, body []byte) (string, error) {
	log := logger.FromContext(ctx)

	name := filepath.Base(filepath.Clean("/" + fileName))
	if name == "/" || name == "." {
		return "", fmt.Errorf("%w: empty file name", ErrWritingFile)
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		log.Err(err).Str("func", "exportFileStorage.SaveExport").Str("dir", e.dir).Msg("failed to create export directory")
		return "", fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, body, 0o600); err != nil {
		log.Err(err).Str("func", "exportFileStorage.SaveExport").Str("path", path).Msg("failed to write export file")
		return "", fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	return path, nil
}

func (e *exportFileStorage) ReadImportFile(ctx context.Context, path string) ([]byte, error) {
	log := logger.FromContext(ctx)

	if !IsJSONFile(path) {
		return nil, ErrNotJSONFile
	}

	body, err := os.ReadFile(path)
	if err != nil {
		log.Err(err).Str("func", "exportFileStorage.ReadImportFile").Str("path", path).Msg("failed to read import file")
		return nil, fmt.Errorf("%w: %w", ErrReadingFile, err)
	}

	return body, nil
}

// IsJSONFile reports whether path names a ".json" file.
func IsJSONFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
