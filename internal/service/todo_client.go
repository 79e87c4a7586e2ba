// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-todo-client/internal/adapter"
	"github.com/MKhiriev/go-todo-client/internal/app"
	"github.com/MKhiriev/go-todo-client/internal/logger"
	"github.com/MKhiriev/go-todo-client/internal/store"
	"github.com/MKhiriev/go-todo-client/internal/utils"
	"github.com/MKhiriev/go-todo-client/internal/validators"
	"github.com/MKhiriev/go-todo-client/models"
)

// TodoClientDeps are the collaborators injected into a [TodoClient].
type TodoClientDeps struct {
	API             adapter.TodoAPI
	Settings        store.SettingsRepository
	Files           store.ExportFileStorage
	Confirmer       Confirmer
	TodoValidator   validators.Validator
	BundleValidator validators.Validator
}

type todoClient struct {
	api             adapter.TodoAPI
	settings        store.SettingsRepository
	files           store.ExportFileStorage
	confirmer       Confirmer
	todoValidator   validators.Validator
	bundleValidator validators.Validator

	tier models.Tier
	caps models.Capabilities

	mu      sync.RWMutex
	session models.Session
	todos   []models.Todo

	listenersMu    sync.RWMutex
	listeners      map[int]func(models.Event)
	nextListenerID int

	logger *logger.Logger
}

func NewTodoClient(deps TodoClientDeps, tier models.Tier, logger *logger.Logger) TodoClient {
	return &todoClient{
		api:             deps.API,
		settings:        deps.Settings,
		files:           deps.Files,
		confirmer:       deps.Confirmer,
		todoValidator:   deps.TodoValidator,
		bundleValidator: deps.BundleValidator,
		tier:            tier,
		caps:            tier.Capabilities(),
		listeners:       make(map[int]func(models.Event)),
		logger:          logger,
	}
}

func (c *todoClient) Start(ctx context.Context) error {
	c.logger.Info().Str("func", "todoClient.Start").Str("tier", c.tier.String()).Msg("starting todo client")

	dark := c.readSetting(ctx, models.SettingDarkMode) == "true"

	var token string
	if c.caps.UsesToken {
		token = strings.TrimSpace(c.readSetting(ctx, models.SettingToken))
	}

	session := c.updateSession(func(s *models.Session) {
		s.DarkMode = dark
		s.Token = token
		s.Authenticated = false
		s.TokenExpiresAt = tokenExpiry(token)
	})

	c.publish(models.ThemeChanged{Dark: dark})
	c.publishSession(session)

	// a persisted token is never trusted until the server accepts it again
	if token != "" {
		err := c.Authenticate(ctx, token)
		if err == nil || !errors.Is(err, ErrAuthenticationFailed) {
			return err
		}
	}

	return c.LoadTodos(ctx)
}

// readSetting returns "" for absent keys and for read failures, which are
// only logged.
func (c *todoClient) readSetting(ctx context.Context, name string) string {
	value, _, err := c.settings.Get(ctx, name)
	if err != nil {
		c.logger.Err(err).Str("func", "todoClient.readSetting").Str("name", name).Msg("failed to read setting")
		return ""
	}
	return value
}

func (c *todoClient) Session() models.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()

	session := c.session
	if session.TokenExpiresAt != nil {
		exp := *session.TokenExpiresAt
		session.TokenExpiresAt = &exp
	}
	return session
}

func (c *todoClient) Todos() []models.Todo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return cloneTodos(c.todos)
}

func (c *todoClient) Tier() models.Tier {
	return c.tier
}

func (c *todoClient) Subscribe(listener func(models.Event)) func() {
	c.listenersMu.Lock()
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = listener
	c.listenersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.listenersMu.Lock()
			delete(c.listeners, id)
			c.listenersMu.Unlock()
		})
	}
}

func (c *todoClient) publish(event models.Event) {
	c.listenersMu.RLock()
	listeners := make([]func(models.Event), 0, len(c.listeners))
	for _, l := range c.listeners {
		listeners = append(listeners, l)
	}
	c.listenersMu.RUnlock()

	for _, l := range listeners {
		l(event)
	}
}

func (c *todoClient) publishSession(s models.Session) {
	c.publish(models.SessionChanged{
		Authenticated: s.Authenticated,
		HasToken:      s.HasToken(),
		ExpiresAt:     s.TokenExpiresAt,
	})
}

func (c *todoClient) postStatus(severity models.Severity, message string) {
	c.publish(models.StatusPosted{Status: models.Status{Message: message, Severity: severity}})
}

func (c *todoClient) postSuccess(message string) {
	c.postStatus(models.SeveritySuccess, message)
}

func (c *todoClient) postError(message string) {
	c.postStatus(models.SeverityError, message)
}

// updateSession applies fn under the lock and returns the resulting state.
func (c *todoClient) updateSession(fn func(s *models.Session)) models.Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	fn(&c.session)
	return c.session
}

// markUnauthorized resets the session after the server rejected the token.
func (c *todoClient) markUnauthorized() {
	session := c.updateSession(func(s *models.Session) {
		s.Authenticated = false
	})
	c.publishSession(session)
}

// requireAccess enforces the tier gate for a write-type operation and
// returns the token to send.
func (c *todoClient) requireAccess(op string, allowed bool) (string, error) {
	if !allowed {
		c.postError(fmt.Sprintf(app.MsgNotPermittedFormat, op))
		return "", fmt.Errorf("%w: %s", ErrNotPermitted, op)
	}

	session := c.Session()
	if c.caps.RequiresAuthentication && !session.Authenticated {
		c.postError(fmt.Sprintf(app.MsgMustAuthenticateFormat, op))
		return "", fmt.Errorf("%w: %s", ErrNotAuthenticated, op)
	}
	if c.caps.UsesToken && !session.HasToken() {
		c.postError(fmt.Sprintf(app.MsgTokenRequiredFormat, op))
		return "", fmt.Errorf("%w: %s", ErrTokenRequired, op)
	}

	return session.Token, nil
}

// handleRemoteError logs err, resets the session on 401/403 and shows
// message.
func (c *todoClient) handleRemoteError(funcName, message string, token string, err error) {
	c.logger.Err(err).
		Str("func", funcName).
		Str("token_fp", utils.TokenFingerprint(token)).
		Msg("todo api call failed")

	if adapter.IsAuthError(err) {
		c.markUnauthorized()
	}
	c.postError(message)
}

func tokenExpiry(token string) *time.Time {
	if token == "" {
		return nil
	}
	exp, err := utils.TokenExpiry(token)
	if err != nil {
		return nil
	}
	return &exp
}

func cloneTodos(todos []models.Todo) []models.Todo {
	if todos == nil {
		return nil
	}
	out := make([]models.Todo, len(todos))
	copy(out, todos)
	return out
}
