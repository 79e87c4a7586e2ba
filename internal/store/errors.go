// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the storage layer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT against the settings
	// table fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when the settings row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan settings row")

	// ErrNotJSONFile is returned when an import file does not carry the
	// ".json" extension.
	ErrNotJSONFile = errors.New("file is not a json file")

	// ErrReadingFile is returned when an import file cannot be read.
	ErrReadingFile = errors.New("failed to read file")

	// ErrWritingFile is returned when an export file cannot be written.
	ErrWritingFile = errors.New("failed to write file")
)
