// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-todo-client/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var message string
	var errBody models.ErrorResponse
	if json.Unmarshal(resp.Body(), &errBody) == nil {
		message = strings.TrimSpace(errBody.Message)
	}

	respErr := NewResponseError(resp.StatusCode(), message)
	respErr.Body = strings.TrimSpace(string(resp.Body()))
	if respErr.Body == "" && respErr.kind == ErrUnexpectedStatus {
		respErr.Body = http.StatusText(resp.StatusCode())
	}

	return respErr
}

// NewResponseError builds a [ResponseError] whose sentinel matches status.
func NewResponseError(status int, message string) *ResponseError {
	respErr := &ResponseError{StatusCode: status, Message: message}

	switch status {
	case http.StatusBadRequest:
		respErr.kind = ErrBadRequest
	case http.StatusUnauthorized:
		respErr.kind = ErrUnauthorized
	case http.StatusForbidden:
		respErr.kind = ErrForbidden
	case http.StatusNotFound:
		respErr.kind = ErrNotFound
	case http.StatusConflict:
		respErr.kind = ErrConflict
	case http.StatusBadGateway:
		respErr.kind = ErrBadGateway
	case http.StatusInternalServerError:
		respErr.kind = ErrInternalServerError
	default:
		respErr.kind = ErrUnexpectedStatus
	}

	return respErr
}
