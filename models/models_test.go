// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTier(t *testing.T) {
	tests := []struct {
		in      string
		want    Tier
		wantErr bool
	}{
		{in: "public", want: TierPublic},
		{in: " APP ", want: TierApp},
		{in: "Admin", want: TierAdmin},
		{in: "", wantErr: true},
		{in: "root", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTier(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTier_Capabilities(t *testing.T) {
	assert.Equal(t, Capabilities{}, TierPublic.Capabilities())

	app := TierApp.Capabilities()
	assert.True(t, app.CanWrite)
	assert.True(t, app.CanToggleMode)
	assert.False(t, app.CanImportExport)
	assert.True(t, app.UsesToken)
	assert.False(t, app.RequiresAuthentication)

	admin := TierAdmin.Capabilities()
	assert.True(t, admin.CanWrite)
	assert.True(t, admin.CanImportExport)
	assert.True(t, admin.RequiresAuthentication)
}

func TestTodoUpdate_JSONOmitsNilFields(t *testing.T) {
	data, err := json.Marshal(CompletedUpdate(true))
	require.NoError(t, err)
	assert.JSONEq(t, `{"completed":true}`, string(data))

	assert.True(t, TodoUpdate{}.IsEmpty())
	assert.False(t, CompletedUpdate(false).IsEmpty())
}

func TestExportBundle_Count(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "array", raw: `{"todos":[{"id":1},{"id":2}],"next_id":3}`, want: 2},
		{name: "keyed object", raw: `{"todos":{"1":{"id":1}},"next_id":2}`, want: 1},
		{name: "empty array", raw: `{"todos":[],"next_id":1}`, want: 0},
		{name: "scalar", raw: `{"todos":5,"next_id":1}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b ExportBundle
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &b))
			assert.Equal(t, tt.want, b.Count())
		})
	}
}

func TestNewAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", " ", "abc123")
	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
}
