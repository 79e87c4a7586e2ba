// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-client/internal/app"
	"github.com/MKhiriev/go-todo-client/internal/store"
	"github.com/MKhiriev/go-todo-client/internal/validators"
	"github.com/MKhiriev/go-todo-client/models"
)

// ExportTodos downloads the bundle and writes it unmodified into the export
// directory.
func (c *todoClient) ExportTodos(ctx context.Context) (string, error) {
	token, err := c.requireAccess(app.OpExportTodos, c.caps.CanImportExport)
	if err != nil {
		return "", err
	}

	c.postSuccess(app.MsgPreparingExport)

	file, err := c.api.ExportTodos(ctx, token)
	if err != nil {
		c.handleRemoteError("todoClient.ExportTodos", app.MsgExportFailed, token, err)
		return "", mapAdapterError(ErrExportTodos, err)
	}

	path, err := c.files.SaveExport(ctx, file.FileName, file.Body)
	if err != nil {
		c.logger.Err(err).Str("func", "todoClient.ExportTodos").Str("file", file.FileName).Msg("failed to save export")
		c.postError(app.MsgExportFailed)
		return "", fmt.Errorf("%w: %w", ErrExportTodos, err)
	}

	c.logger.Info().Str("func", "todoClient.ExportTodos").Str("path", path).Int("bytes", len(file.Body)).Msg("export saved")
	c.publish(models.ExportSaved{Path: path})
	c.postSuccess(app.MsgExportSuccess)

	return path, nil
}

// ImportTodos validates contents locally, asks for confirmation and forwards
// the raw bytes. Validation failures make no network call.
func (c *todoClient) ImportTodos(ctx context.Context, contents []byte) (int, error) {
	token, err := c.requireAccess(app.OpImportTodos, c.caps.CanImportExport)
	if err != nil {
		return 0, err
	}

	if err = c.bundleValidator.Validate(ctx, contents); err != nil {
		if errors.Is(err, validators.ErrMalformedBundle) {
			c.postError(app.MsgInvalidJSON)
		} else {
			c.postError(app.MsgInvalidBundleFields)
		}
		return 0, fmt.Errorf("%w: %w", ErrInvalidBundle, err)
	}

	var bundle models.ExportBundle
	if err = json.Unmarshal(contents, &bundle); err == nil {
		c.logger.Debug().
			Str("func", "todoClient.ImportTodos").
			Int("bundle_todos", bundle.Count()).
			Int64("next_id", bundle.NextID).
			Msg("bundle validated")
	}

	if !c.confirmer.Confirm(ctx, app.MsgConfirmImport) {
		c.postError(app.MsgImportCancelled)
		return 0, ErrCancelled
	}

	c.postSuccess(app.MsgImportingTodos)

	count, err := c.api.ImportTodos(ctx, token, json.RawMessage(contents))
	if err != nil {
		c.handleRemoteError("todoClient.ImportTodos", fmt.Sprintf(app.MsgImportFailedFormat, importFailureDetail(err)), token, err)
		return 0, mapAdapterError(ErrImportTodos, err)
	}

	c.logger.Info().Str("func", "todoClient.ImportTodos").Int("imported", count).Msg("bundle imported")
	c.postSuccess(fmt.Sprintf(app.MsgImportSuccessFormat, count))

	return count, c.LoadTodos(ctx)
}

// ImportTodosFromFile reads a ".json" bundle through the file storage and
// passes it to ImportTodos.
func (c *todoClient) ImportTodosFromFile(ctx context.Context, path string) (int, error) {
	if _, err := c.requireAccess(app.OpImportTodos, c.caps.CanImportExport); err != nil {
		return 0, err
	}

	if !store.IsJSONFile(path) {
		c.postError(app.MsgSelectValidJSONFile)
		return 0, fmt.Errorf("%w: %s", ErrInvalidImportFile, path)
	}

	c.postSuccess(app.MsgReadingFile)

	contents, err := c.files.ReadImportFile(ctx, path)
	if err != nil {
		c.logger.Err(err).Str("func", "todoClient.ImportTodosFromFile").Str("path", path).Msg("failed to read import file")
		if errors.Is(err, store.ErrNotJSONFile) {
			c.postError(app.MsgSelectValidJSONFile)
		} else {
			c.postError(fmt.Sprintf(app.MsgImportFailedFormat, "could not read file"))
		}
		return 0, fmt.Errorf("%w: %w", ErrInvalidImportFile, err)
	}

	return c.ImportTodos(ctx, contents)
}
