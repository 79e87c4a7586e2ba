// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-todo-client/internal/config"
	"github.com/MKhiriev/go-todo-client/internal/logger"
	"github.com/MKhiriev/go-todo-client/internal/utils"
	"github.com/MKhiriev/go-todo-client/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T, router http.Handler) TodoAPI {
	t.Helper()
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	api, err := NewHTTPTodoAPI(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return api
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "http://localhost:5000/", want: "http://localhost:5000"},
		{raw: "localhost:5000", want: "http://localhost:5000"},
		{raw: "  https://todo.example.com  ", want: "https://todo.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── ListTodos ───────────────────────────────────────────────────────────────

func TestListTodos_AnonymousAndBearer(t *testing.T) {
	var (
		mu          sync.Mutex
		authHeaders []string
	)
	r := chi.NewRouter()
	r.Get("/api/todos", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		authHeaders = append(authHeaders, r.Header.Get("Authorization"))
		mu.Unlock()
		assert.NotEmpty(t, r.Header.Get(utils.RequestIDHeader))
		writeJSON(w, http.StatusOK, map[string]any{
			"todos": []models.Todo{{ID: 1, Title: "Buy milk"}},
		})
	})
	api := newTestAPI(t, r)

	todos, err := api.ListTodos(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "Buy milk", todos[0].Title)

	_, err = api.ListTodos(context.Background(), "secret")
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"", "Bearer secret"}, authHeaders)
}

func TestListTodos_EmptyBodyYieldsEmptySlice(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/todos", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{})
	})

	todos, err := newTestAPI(t, r).ListTodos(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, todos)
	assert.Empty(t, todos)
}

func TestListTodos_StatusMapping(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
		isAuth  bool
	}{
		{status: http.StatusUnauthorized, wantErr: ErrUnauthorized, isAuth: true},
		{status: http.StatusForbidden, wantErr: ErrForbidden, isAuth: true},
		{status: http.StatusNotFound, wantErr: ErrNotFound},
		{status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
		{status: http.StatusServiceUnavailable, wantErr: ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			r := chi.NewRouter()
			r.Get("/api/todos", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, models.ErrorResponse{Message: "nope"})
			})

			_, err := newTestAPI(t, r).ListTodos(context.Background(), "tok")

			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.isAuth, IsAuthError(err))
			assert.Equal(t, "nope", ServerMessage(err))
		})
	}
}

// ── Mutations ───────────────────────────────────────────────────────────────

func TestCreateTodo(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/todos", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		var req models.CreateTodoRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.CreateTodoRequest{Title: "Buy milk", Description: ""}, req)
		writeJSON(w, http.StatusCreated, models.Todo{ID: 7, Title: req.Title})
	})

	created, err := newTestAPI(t, r).CreateTodo(context.Background(), "tok", models.CreateTodoRequest{Title: "Buy milk"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
}

func TestUpdateTodo_SendsOnlySetFields(t *testing.T) {
	r := chi.NewRouter()
	r.Put("/api/todos/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", chi.URLParam(r, "id"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"completed":true}`, string(body))
		w.WriteHeader(http.StatusOK)
	})

	err := newTestAPI(t, r).UpdateTodo(context.Background(), "tok", 5, models.CompletedUpdate(true))
	require.NoError(t, err)
}

func TestDeleteTodo_NotFound(t *testing.T) {
	r := chi.NewRouter()
	r.Delete("/api/todos/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	err := newTestAPI(t, r).DeleteTodo(context.Background(), "tok", 9)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, ServerMessage(err))
}

// ── Private mode ────────────────────────────────────────────────────────────

func TestPrivateMode(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/private-mode", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good" {
			writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Message: "Invalid token"})
			return
		}
		writeJSON(w, http.StatusOK, models.PrivateModeResponse{PrivateMode: true})
	})
	r.Post("/api/private-mode", func(w http.ResponseWriter, r *http.Request) {
		var req models.PrivateModeRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		writeJSON(w, http.StatusOK, models.PrivateModeResponse{PrivateMode: req.Enabled})
	})
	api := newTestAPI(t, r)
	ctx := context.Background()

	enabled, err := api.GetPrivateMode(ctx, "good")
	require.NoError(t, err)
	assert.True(t, enabled)

	_, err = api.GetPrivateMode(ctx, "bad")
	require.ErrorIs(t, err, ErrUnauthorized)

	enabled, err = api.SetPrivateMode(ctx, "good", false)
	require.NoError(t, err)
	assert.False(t, enabled)
}

// ── Export / Import ─────────────────────────────────────────────────────────

func TestExportTodos(t *testing.T) {
	payload := `{"todos":[{"id":1,"title":"a"}],"next_id":2}`
	r := chi.NewRouter()
	r.Get("/api/todos/export", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="backup_2026.json"`)
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write([]byte(payload))
	})

	file, err := newTestAPI(t, r).ExportTodos(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "backup_2026.json", file.FileName)
	assert.Equal(t, payload, string(file.Body))
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, DefaultExportFileName, exportFileName(""))
	assert.Equal(t, DefaultExportFileName, exportFileName("attachment"))
	assert.Equal(t, DefaultExportFileName, exportFileName("attachment; filename="))
	assert.Equal(t, DefaultExportFileName, exportFileName(";;;"))
	assert.Equal(t, "x.json", exportFileName("attachment; filename=x.json"))
	assert.Equal(t, "a b.json", exportFileName(`attachment; filename="a b.json"`))
	assert.Equal(t, "my export.json", exportFileName("attachment; filename=my export.json"))
	assert.Equal(t, "my export.json", exportFileName("attachment; filename=my export.json; size=10"))
}

func TestImportTodos(t *testing.T) {
	bundle := json.RawMessage(`{"todos":[],"next_id":1}`)
	r := chi.NewRouter()
	r.Post("/api/todos/import", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, string(bundle), string(body))
		writeJSON(w, http.StatusOK, models.ImportResponse{ImportedCount: 3})
	})

	count, err := newTestAPI(t, r).ImportTodos(context.Background(), "tok", bundle)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestImportTodos_ServerMessage(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/todos/import", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: "Invalid data format"})
	})

	_, err := newTestAPI(t, r).ImportTodos(context.Background(), "tok", json.RawMessage(`{}`))
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "Invalid data format", ServerMessage(err))
}

func TestTransportError(t *testing.T) {
	api, err := NewHTTPTodoAPI(config.ClientAdapter{
		HTTPAddress:    "http://127.0.0.1:1",
		RequestTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	_, err = api.ListTodos(context.Background(), "")
	require.Error(t, err)
	assert.False(t, IsAuthError(err))
	assert.Empty(t, ServerMessage(err))
}
