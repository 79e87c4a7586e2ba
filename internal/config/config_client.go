// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-todo-client/models"
)

// ClientApp holds client behaviour settings.
type ClientApp struct {
	// Tier is the parsed client variant.
	Tier models.Tier
	// StatusDuration is how long a status message stays on screen.
	StatusDuration time.Duration
	// LogFile is the JSON log destination; empty means next to the binary.
	LogFile string
}

// ClientAdapter holds network settings used by the transport layer.
type ClientAdapter struct {
	// HTTPAddress is the todo API base address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientFiles contains local file-system settings.
type ClientFiles struct {
	// ExportDir is the directory receiving exported bundles.
	ExportDir string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB    ClientDB
	Files ClientFiles
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig builds and validates the client configuration from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	tier, err := models.ParseTier(cfg.App.Tier)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAppConfigs, err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Tier:           tier,
			StatusDuration: cfg.App.StatusDuration,
			LogFile:        cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB:    ClientDB{DSN: cfg.Storage.DB.DSN},
			Files: ClientFiles{ExportDir: cfg.Storage.Files.ExportDir},
		},
	}

	return clientCfg, clientCfg.validate()
}
