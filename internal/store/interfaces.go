// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SettingsRepository is the durable local key-value store holding the
// client's persisted preferences (stored token, dark mode flag).
type SettingsRepository interface {
	// Get returns the stored value and true, or "" and false when absent.
	Get(ctx context.Context, name string) (string, bool, error)
	// Set inserts or replaces the value stored under name.
	Set(ctx context.Context, name, value string) error
	// Delete removes name. Deleting an absent key is not an error.
	Delete(ctx context.Context, name string) error
}

// ExportFileStorage writes downloaded export bundles and reads bundles
// chosen for import.
type ExportFileStorage interface {
	// SaveExport writes body under fileName inside the export directory and
	// returns the resulting path.
	SaveExport(ctx context.Context, fileName string, body []byte) (string, error)
	// ReadImportFile reads a bundle file. Only ".json" files are accepted.
	ReadImportFile(ctx context.Context, path string) ([]byte, error)
}
