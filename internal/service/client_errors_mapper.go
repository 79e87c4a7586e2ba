// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-todo-client/internal/adapter"
	"github.com/MKhiriev/go-todo-client/internal/app"
)

// mapAdapterError wraps a transport error with the operation sentinel and,
// for 401/403, with [ErrUnauthorized] as well.
func mapAdapterError(op error, err error) error {
	if err == nil {
		return nil
	}

	if adapter.IsAuthError(err) {
		return fmt.Errorf("%w: %w: %w", op, ErrUnauthorized, err)
	}

	return fmt.Errorf("%w: %w", op, err)
}

// importFailureDetail picks the text shown after "Failed to import todos: ".
// The server's own message wins; otherwise the HTTP status is reported.
func importFailureDetail(err error) string {
	if msg := adapter.ServerMessage(err); msg != "" {
		return msg
	}
	if status, ok := adapter.StatusCode(err); ok {
		return fmt.Sprintf(app.MsgImportHTTPStatusFormat, status)
	}
	return app.MsgImportFailedFallback
}
