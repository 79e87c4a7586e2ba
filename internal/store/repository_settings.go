// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-client/internal/logger"
)

// settingsRepository logs through the logger attached to each call's context.
type settingsRepository struct {
	*DB
}

func NewSettingsRepository(db *DB) SettingsRepository {
	return &settingsRepository{DB: db}
}

func (s *settingsRepository) Get(ctx context.Context, name string) (string, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSettingQuery(name)
	if err != nil {
		log.Err(err).Str("func", "settingsRepository.Get").Str("name", name).Msg("failed to build query")
		return "", false, err
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "settingsRepository.Get").Str("name", name).Msg("failed to read setting")
		return "", false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, true, nil
}

func (s *settingsRepository) Set(ctx context.Context, name, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSettingQuery(name, value)
	if err != nil {
		log.Err(err).Str("func", "settingsRepository.Set").Str("name", name).Msg("failed to build query")
		return err
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "settingsRepository.Set").Str("name", name).Msg("failed to upsert setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *settingsRepository) Delete(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSettingQuery(name)
	if err != nil {
		log.Err(err).Str("func", "settingsRepository.Delete").Str("name", name).Msg("failed to build query")
		return err
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "settingsRepository.Delete").Str("name", name).Msg("failed to delete setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
