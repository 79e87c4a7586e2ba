// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive todo client runtime.
//
// It wires the todo API adapter, the local settings storage, the todo client
// service and the terminal UI into a single process lifecycle.
package client
