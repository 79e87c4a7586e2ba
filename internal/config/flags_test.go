// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		assert func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "no flags yields zero config",
			args: nil,
			assert: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, StructuredConfig{}, *cfg)
			},
		},
		{
			name: "all flags",
			args: []string{
				"-a", "localhost:8080",
				"-request-timeout", "4s",
				"-d", "local.db",
				"-export-dir", "out",
				"-tier", "public",
				"-status-duration", "1s",
				"-log-file", "client.log",
				"-c", "conf.json",
			},
			assert: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
				assert.Equal(t, 4*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, "local.db", cfg.Storage.DB.DSN)
				assert.Equal(t, "out", cfg.Storage.Files.ExportDir)
				assert.Equal(t, "public", cfg.App.Tier)
				assert.Equal(t, time.Second, cfg.App.StatusDuration)
				assert.Equal(t, "client.log", cfg.App.LogFile)
				assert.Equal(t, "conf.json", cfg.JSONFilePath)
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "alias.json"},
			assert: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "alias.json", cfg.JSONFilePath)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.NoError(t, err)
			tt.assert(t, cfg)
		})
	}
}

func TestParseFlags_BadDuration(t *testing.T) {
	_, err := parseFlags([]string{"-request-timeout", "later"})
	require.Error(t, err)
}
