// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-todo-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestBuilder_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "app", cfg.App.Tier)
	assert.Equal(t, 3*time.Second, cfg.App.StatusDuration)
	assert.Equal(t, "todo-client.db", cfg.Storage.DB.DSN)
	assert.Equal(t, ".", cfg.Storage.Files.ExportDir)
	assert.Equal(t, "http://localhost:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
}

func TestBuilder_LaterSourcesOverride(t *testing.T) {
	t.Setenv("APP_TIER", "public")
	t.Setenv("ADAPTER_ADDRESS", "http://env:5000")

	jsonPath := writeJSONConfig(t, `{"adapter":{"http_address":"http://json:5000"}}`)

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags([]string{"-tier", "admin", "-c", jsonPath}).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "admin", cfg.App.Tier, "flag wins over env")
	assert.Equal(t, "http://json:5000", cfg.Adapter.HTTPAddress, "json wins over env")
	assert.Equal(t, "todo-client.db", cfg.Storage.DB.DSN, "zero values keep defaults")
}

func TestBuilder_FlagErrorIsReported(t *testing.T) {
	_, err := newConfigBuilder().withDefaults().withFlags([]string{"-unknown"}).build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}

func TestBuilder_MissingJSONFile(t *testing.T) {
	_, err := newConfigBuilder().
		withDefaults().
		withFlags([]string{"-config", filepath.Join(t.TempDir(), "absent.json")}).
		withJSON().
		build()
	require.Error(t, err)
}

func TestNewClientConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "unknown tier",
			mutate:  func(cfg *StructuredConfig) { cfg.App.Tier = "superuser" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "in-memory dsn rejected",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = ":memory:" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty export dir",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Files.ExportDir = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty address",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.HTTPAddress = "  " },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "negative status duration",
			mutate:  func(cfg *StructuredConfig) { cfg.App.StatusDuration = -time.Second },
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			cfg := defaultConfig()
			tt.mutate(cfg)

			// Act
			clientCfg, err := newClientConfig(cfg)

			// Assert
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.TierApp, clientCfg.App.Tier)
		})
	}
}
