// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-todo-client/internal/config"
	"github.com/MKhiriev/go-todo-client/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestRepo(db *sql.DB) SettingsRepository {
	return NewSettingsRepository(&DB{DB: db, logger: logger.Nop()})
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestSettingsRepository_Get(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock)
		wantValue string
		wantFound bool
		wantErr   error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT value FROM settings WHERE name = \?`).
					WithArgs("todoToken").
					WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("abc"))
			},
			wantValue: "abc",
			wantFound: true,
		},
		{
			name: "absent",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT value FROM settings`).
					WithArgs("todoToken").
					WillReturnRows(sqlmock.NewRows([]string{"value"}))
			},
		},
		{
			name: "query error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT value FROM settings`).
					WithArgs("todoToken").
					WillReturnError(errors.New("disk I/O error"))
			},
			wantErr: ErrScanningRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			db, mock := newTestDB(t)
			tt.setup(mock)
			repo := newTestRepo(db)

			// Act
			value, found, err := repo.Get(context.Background(), "todoToken")

			// Assert
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantValue, value)
			assert.Equal(t, tt.wantFound, found)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// ── Set / Delete ─────────────────────────────────────────────────────────────

func TestSettingsRepository_Set(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectExec(`INSERT INTO settings .* ON CONFLICT\(name\) DO UPDATE`).
		WithArgs("darkMode", "true").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := newTestRepo(db).Set(context.Background(), "darkMode", "true")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepository_Set_Error(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectExec(`INSERT INTO settings`).
		WillReturnError(errors.New("database is locked"))

	err := newTestRepo(db).Set(context.Background(), "darkMode", "true")

	require.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSettingsRepository_Delete(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectExec(`DELETE FROM settings WHERE name = \?`).
		WithArgs("todoToken").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := newTestRepo(db).Delete(context.Background(), "todoToken")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

// ── SQLite integration ───────────────────────────────────────────────────────

func TestClientStorages_SQLiteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := config.ClientStorage{
		DB:    config.ClientDB{DSN: filepath.Join(dir, "nested", "client.db")},
		Files: config.ClientFiles{ExportDir: dir},
	}

	ctx := context.Background()
	storages, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	_, found, err := storages.Settings.Get(ctx, "todoToken")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, storages.Settings.Set(ctx, "todoToken", "first"))
	require.NoError(t, storages.Settings.Set(ctx, "todoToken", "second"))

	value, found, err := storages.Settings.Get(ctx, "todoToken")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "second", value)

	require.NoError(t, storages.Settings.Delete(ctx, "todoToken"))
	require.NoError(t, storages.Settings.Delete(ctx, "todoToken"))

	_, found, err = storages.Settings.Get(ctx, "todoToken")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSettingsRepository_LogsThroughContextLogger(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(db)

	var buf bytes.Buffer
	ctx := (&logger.Logger{Logger: zerolog.New(&buf)}).WithContext(context.Background())

	mock.ExpectExec(`INSERT INTO settings`).
		WithArgs("darkMode", "true").
		WillReturnError(errors.New("database is locked"))

	err := repo.Set(ctx, "darkMode", "true")

	require.ErrorIs(t, err, ErrExecutingStatement)
	assert.Contains(t, buf.String(), "failed to upsert setting")
	assert.Contains(t, buf.String(), "database is locked")
	require.NoError(t, mock.ExpectationsWereMet())
}
