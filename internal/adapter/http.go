// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-todo-client/internal/config"
	"github.com/MKhiriev/go-todo-client/internal/logger"
	"github.com/MKhiriev/go-todo-client/internal/utils"
	"github.com/MKhiriev/go-todo-client/models"
	"github.com/go-resty/resty/v2"
)

// DefaultExportFileName is used when the export response has no usable
// Content-Disposition filename.
const DefaultExportFileName = "todos_export.json"

type httpTodoAPI struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPTodoAPI constructs an HTTP/REST implementation of [TodoAPI].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout. Every response is logged at debug level.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPTodoAPI(adapterCfg config.ClientAdapter, log *logger.Logger) (TodoAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("func", "httpTodoAPI.OnAfterResponse").
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Str("request_id", resp.Request.Header.Get(utils.RequestIDHeader)).
			Int("status", resp.StatusCode()).
			Dur("elapsed", resp.Time()).
			Msg("todo api response")
		return nil
	})

	return &httpTodoAPI{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request builds a request bound to ctx, attaching the bearer token when one
// is given.
func (h *httpTodoAPI) request(ctx context.Context, token string) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token = strings.TrimSpace(token); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func todoPath(id int64) string {
	return "/api/todos/" + strconv.FormatInt(id, 10)
}

// ListTodos implements [TodoAPI]. The response shape is {"todos": [...]};
// a missing array yields an empty, non-nil slice.
func (h *httpTodoAPI) ListTodos(ctx context.Context, token string) ([]models.Todo, error) {
	var result models.TodoListResponse

	resp, err := h.request(ctx, token).
		SetResult(&result).
		Get("/api/todos")
	if err != nil {
		return nil, fmt.Errorf("list todos request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if result.Todos == nil {
		result.Todos = []models.Todo{}
	}
	return result.Todos, nil
}

// CreateTodo implements [TodoAPI] via POST /api/todos.
func (h *httpTodoAPI) CreateTodo(ctx context.Context, token string, req models.CreateTodoRequest) (models.Todo, error) {
	var created models.Todo

	resp, err := h.request(ctx, token).
		SetBody(req).
		SetResult(&created).
		Post("/api/todos")
	if err != nil {
		return models.Todo{}, fmt.Errorf("create todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Todo{}, err
	}

	return created, nil
}

// UpdateTodo implements [TodoAPI] via PUT /api/todos/{id}. Only the fields
// set in upd are sent.
func (h *httpTodoAPI) UpdateTodo(ctx context.Context, token string, id int64, upd models.TodoUpdate) error {
	resp, err := h.request(ctx, token).
		SetBody(upd).
		Put(todoPath(id))
	if err != nil {
		return fmt.Errorf("update todo request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteTodo implements [TodoAPI] via DELETE /api/todos/{id}.
func (h *httpTodoAPI) DeleteTodo(ctx context.Context, token string, id int64) error {
	resp, err := h.request(ctx, token).
		Delete(todoPath(id))
	if err != nil {
		return fmt.Errorf("delete todo request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetPrivateMode implements [TodoAPI] via GET /api/private-mode.
func (h *httpTodoAPI) GetPrivateMode(ctx context.Context, token string) (bool, error) {
	var result models.PrivateModeResponse

	resp, err := h.request(ctx, token).
		SetResult(&result).
		Get("/api/private-mode")
	if err != nil {
		return false, fmt.Errorf("private mode request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return result.PrivateMode, nil
}

// SetPrivateMode implements [TodoAPI] via POST /api/private-mode.
func (h *httpTodoAPI) SetPrivateMode(ctx context.Context, token string, enabled bool) (bool, error) {
	var result models.PrivateModeResponse

	resp, err := h.request(ctx, token).
		SetBody(models.PrivateModeRequest{Enabled: enabled}).
		SetResult(&result).
		Post("/api/private-mode")
	if err != nil {
		return false, fmt.Errorf("set private mode request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return result.PrivateMode, nil
}

// ExportTodos implements [TodoAPI] via GET /api/todos/export. The body is
// returned unmodified together with the server-suggested file name.
func (h *httpTodoAPI) ExportTodos(ctx context.Context, token string) (models.ExportFile, error) {
	resp, err := h.request(ctx, token).
		SetHeader("Accept", "application/json, application/octet-stream").
		Get("/api/todos/export")
	if err != nil {
		return models.ExportFile{}, fmt.Errorf("export request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ExportFile{}, err
	}

	return models.ExportFile{
		FileName: exportFileName(resp.Header().Get("Content-Disposition")),
		Body:     resp.Body(),
	}, nil
}

// looseFileName matches a filename parameter that is not valid RFC 2183,
// e.g. an unquoted name containing spaces.
var looseFileName = regexp.MustCompile(`filename="?([^";]+)"?`)

// exportFileName extracts the filename parameter of a Content-Disposition
// header, falling back to [DefaultExportFileName].
func exportFileName(disposition string) string {
	if disposition == "" {
		return DefaultExportFileName
	}

	var name string
	if _, params, err := mime.ParseMediaType(disposition); err == nil {
		name = params["filename"]
	} else if m := looseFileName.FindStringSubmatch(disposition); m != nil {
		name = m[1]
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultExportFileName
	}
	return name
}

// ImportTodos implements [TodoAPI] via POST /api/todos/import. The bundle
// bytes are forwarded as-is.
func (h *httpTodoAPI) ImportTodos(ctx context.Context, token string, bundle json.RawMessage) (int, error) {
	var result models.ImportResponse

	resp, err := h.request(ctx, token).
		SetBody([]byte(bundle)).
		SetResult(&result).
		Post("/api/todos/import")
	if err != nil {
		return 0, fmt.Errorf("import request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return result.ImportedCount, nil
}
