// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-client/internal/adapter"
	"github.com/MKhiriev/go-todo-client/internal/config"
	"github.com/MKhiriev/go-todo-client/internal/logger"
	"github.com/MKhiriev/go-todo-client/internal/service"
	"github.com/MKhiriev/go-todo-client/internal/store"
	"github.com/MKhiriev/go-todo-client/internal/tui"
	"github.com/MKhiriev/go-todo-client/models"
)

type App struct {
	storages *store.ClientStorages
	ui       Client
	logger   *logger.Logger
}

// NewApp builds every layer of the client from cfg. The storage opened here
// is released by Run.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	api, err := adapter.NewHTTPTodoAPI(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create todo api adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	// the confirmer exists before the program so the client can hold it
	confirmer := tui.NewPromptConfirmer()

	services, err := service.NewClientServices(api, storages, confirmer, cfg.App.Tier, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create client services: %w", err)
	}

	ui := tui.New(services.TodoClient, confirmer, cfg.App.StatusDuration, buildInfo, log)

	return &App{storages: storages, ui: ui, logger: log}, nil
}

// Run hands the UI a context carrying the app logger, so that layers resolving
// their logger through [logger.FromContext] write to the same sink.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Str("func", "App.Run").Msg("failed to close local storage")
		}
	}()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}

	a.logger.Info().Str("func", "App.Run").Msg("client stopped")
	return nil
}
