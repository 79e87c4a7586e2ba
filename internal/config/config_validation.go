// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the merged [StructuredConfig] is usable. Field-level
// rules live in [ClientConfig.validate]; here only the tier spelling is
// checked early so the error mentions the raw value.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.App.Tier) == "" {
		return ErrInvalidAppConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Files.ExportDir == "" {
		return ErrInvalidStorageConfigs
	}

	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.StatusDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
