// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client behaviour settings: tier, status banner duration and
	// log destination.
	App App `envPrefix:"APP_"`

	// Storage holds the local settings database and the export directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the todo API address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Tier selects the client variant: "public", "app" or "admin".
	// Env: APP_TIER
	Tier string `env:"TIER"`

	// StatusDuration is how long a status message stays visible.
	// Env: APP_STATUS_DURATION
	StatusDuration time.Duration `env:"STATUS_DURATION"`

	// LogFile is the path of the JSON log file.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the local persistence settings.
type Storage struct {
	// DB holds the local settings database connection.
	DB DB `envPrefix:"DB_"`

	// Files holds the export download directory.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the local SQLite settings database.
type DB struct {
	// DSN is the SQLite file path (e.g. "todo-client.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for export downloads.
type Files struct {
	// ExportDir is the directory where exported bundles are written.
	// Env: STORAGE_FILES_EXPORT_DIR
	ExportDir string `env:"EXPORT_DIR"`
}

// Adapter holds settings for the todo API transport.
type Adapter struct {
	// HTTPAddress is the base address of the todo API, either a URL
	// ("http://host:5000") or "host:port".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// defaultConfig returns the built-in defaults that every other source
// overrides.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Tier:           "app",
			StatusDuration: 3 * time.Second,
		},
		Storage: Storage{
			DB:    DB{DSN: "todo-client.db"},
			Files: Files{ExportDir: "."},
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:5000",
			RequestTimeout: 15 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
