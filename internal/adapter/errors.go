// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// ResponseError describes a non-2xx response. It unwraps to the sentinel
// matching its status code.
type ResponseError struct {
	StatusCode int
	// Message is the "message" field of a JSON error body, if any.
	Message string
	// Body is the trimmed raw response body.
	Body string

	kind error
}

func (e *ResponseError) Error() string {
	detail := e.Message
	if detail == "" {
		detail = e.Body
	}
	if detail == "" {
		return fmt.Sprintf("%v (http %d)", e.kind, e.StatusCode)
	}
	return fmt.Sprintf("%v (http %d): %s", e.kind, e.StatusCode, detail)
}

func (e *ResponseError) Unwrap() error {
	return e.kind
}

// ServerMessage returns the server-provided error message carried by err,
// or "" when err did not come from a decoded error body.
func ServerMessage(err error) string {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.Message
	}
	return ""
}

// IsAuthError reports whether err is a 401 or 403 response.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrForbidden)
}

// StatusCode returns the HTTP status carried by err, if it came from a
// non-2xx response.
func StatusCode(err error) (int, bool) {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode, true
	}
	return 0, false
}
