// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-todo-client/internal/adapter"
	"github.com/MKhiriev/go-todo-client/internal/logger"
	"github.com/MKhiriev/go-todo-client/internal/store"
	"github.com/MKhiriev/go-todo-client/internal/validators"
	"github.com/MKhiriev/go-todo-client/models"
)

type ClientServices struct {
	TodoClient TodoClient
}

func NewClientServices(api adapter.TodoAPI, storages *store.ClientStorages, confirmer Confirmer, tier models.Tier, logger *logger.Logger) (*ClientServices, error) {
	bundleValidator, err := validators.NewBundleValidator()
	if err != nil {
		return nil, fmt.Errorf("error creating bundle validator: %w", err)
	}

	client := NewTodoClient(TodoClientDeps{
		API:             api,
		Settings:        storages.Settings,
		Files:           storages.Files,
		Confirmer:       confirmer,
		TodoValidator:   validators.NewTodoValidator(),
		BundleValidator: bundleValidator,
	}, tier, logger)

	return &ClientServices{TodoClient: client}, nil
}
