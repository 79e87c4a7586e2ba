// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	// Arrange
	path := writeJSONConfig(t, `{
		"app": {"tier": "admin", "status_duration": "2s", "log_file": "c.log"},
		"storage": {"db": {"dsn": "j.db"}, "files": {"export_dir": "exports"}},
		"adapter": {"http_address": "http://json:1", "request_timeout": 1000000000}
	}`)

	// Act
	cfg, err := parseJSON(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "admin", cfg.App.Tier)
	assert.Equal(t, 2*time.Second, cfg.App.StatusDuration)
	assert.Equal(t, "c.log", cfg.App.LogFile)
	assert.Equal(t, "j.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "exports", cfg.Storage.Files.ExportDir)
	assert.Equal(t, "http://json:1", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseJSON_Malformed(t *testing.T) {
	path := writeJSONConfig(t, `{"app":`)

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "number", input: `500`, want: 500 * time.Nanosecond},
		{name: "bad string", input: `"whenever"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(3 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"3s"`, string(b))
}
