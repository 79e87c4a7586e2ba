// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-todo-client/internal/client"
	"github.com/MKhiriev/go-todo-client/internal/config"
	"github.com/MKhiriev/go-todo-client/internal/logger"
	"github.com/MKhiriev/go-todo-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("go-todo-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("go-todo-client", cfg.App.LogFile)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Str("tier", cfg.App.Tier.String()).
		Msg("starting todo client")
	ctx = log.WithContext(ctx)

	app, err := client.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
