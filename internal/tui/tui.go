// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal renderer of the todo client. It subscribes to
// the client's events and turns key presses into client operations.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-todo-client/internal/logger"
	"github.com/MKhiriev/go-todo-client/internal/service"
	"github.com/MKhiriev/go-todo-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	client         service.TodoClient
	confirmer      *PromptConfirmer
	statusDuration time.Duration
	buildInfo      models.AppBuildInfo
	logger         *logger.Logger
}

func New(client service.TodoClient, confirmer *PromptConfirmer, statusDuration time.Duration, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		client:         client,
		confirmer:      confirmer,
		statusDuration: statusDuration,
		buildInfo:      buildInfo,
		logger:         logger,
	}
}

// Run starts the program and blocks until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewModel(ctx, t.client, t.statusDuration, t.buildInfo)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.confirmer.Bind(program)
	unsubscribe := t.client.Subscribe(func(event models.Event) {
		program.Send(clientEventMsg{event: event})
	})
	defer unsubscribe()

	t.logger.Info().Str("func", "TUI.Run").Str("tier", t.client.Tier().String()).Msg("starting terminal ui")

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("terminal ui: %w", err)
	}
	return nil
}
