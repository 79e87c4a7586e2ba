// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses the client command-line flags from args.
//
// Flags:
//
//	-a todo API address (URL or host:port)
//	-request-timeout request timeout (e.g., "15s")
//	-d local settings database path
//	-export-dir directory for exported bundles
//	-tier client tier: public, app or admin
//	-status-duration status banner duration (e.g., "3s")
//	-log-file log file path
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		address        string
		requestTimeout time.Duration
		databaseDSN    string
		exportDir      string
		tier           string
		statusDuration time.Duration
		logFile        string
		jsonConfigPath string
	)

	fs := flag.NewFlagSet("todo-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&address, "a", "", "Todo API address")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&databaseDSN, "d", "", "Local settings database path")
	fs.StringVar(&exportDir, "export-dir", "", "Directory for exported bundles")
	fs.StringVar(&tier, "tier", "", "Client tier: public, app or admin")
	fs.DurationVar(&statusDuration, "status-duration", 0, "Status message duration (e.g., 3s)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Tier:           tier,
			StatusDuration: statusDuration,
			LogFile:        logFile,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Files: Files{ExportDir: exportDir},
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
