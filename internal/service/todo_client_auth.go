// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-todo-client/internal/app"
	"github.com/MKhiriev/go-todo-client/internal/utils"
	"github.com/MKhiriev/go-todo-client/models"
)

// Authenticate probes GET /api/private-mode with the candidate token. Only an
// accepted token is persisted; on failure the current token stays in memory
// and the session is marked unauthenticated. Once the token is accepted the
// list is reloaded; a failed reload is reported through its own status and
// does not fail authentication.
func (c *todoClient) Authenticate(ctx context.Context, candidate string) error {
	if !c.caps.UsesToken {
		c.postError(fmt.Sprintf(app.MsgNotPermittedFormat, app.OpAuthenticate))
		return fmt.Errorf("%w: %s", ErrNotPermitted, app.OpAuthenticate)
	}

	token := strings.TrimSpace(candidate)
	if token == "" {
		c.postError(app.MsgEnterToken)
		return ErrEmptyToken
	}

	log := c.logger.With().
		Str("func", "todoClient.Authenticate").
		Str("token_fp", utils.TokenFingerprint(token)).
		Logger()

	privateMode, err := c.api.GetPrivateMode(ctx, token)
	if err == nil {
		if err = c.settings.Set(ctx, models.SettingToken, token); err != nil {
			err = fmt.Errorf("%w: %w", ErrSaveSettings, err)
		}
	}
	if err != nil {
		log.Err(err).Msg("token probe failed")
		c.markUnauthorized()
		c.postError(app.MsgAuthFailed)
		return fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	session := c.updateSession(func(s *models.Session) {
		s.Token = token
		s.Authenticated = true
		s.PrivateMode = privateMode
		s.TokenExpiresAt = tokenExpiry(token)
	})
	log.Info().Bool("private_mode", privateMode).Msg("token accepted")

	c.publishSession(session)
	c.publish(models.PrivateModeChanged{Enabled: privateMode})
	c.postSuccess(app.MsgAuthSuccess)

	if err = c.LoadTodos(ctx); err != nil {
		log.Debug().Err(err).Msg("reload after authentication failed")
	}

	return nil
}

// Logout is local only. It forgets the token in memory even if removing the
// persisted copy fails; that failure is returned. The app tier keeps its
// current list until the next explicit reload.
func (c *todoClient) Logout(ctx context.Context) error {
	if !c.caps.UsesToken {
		return fmt.Errorf("%w: logout", ErrNotPermitted)
	}

	var deleteErr error
	if err := c.settings.Delete(ctx, models.SettingToken); err != nil {
		c.logger.Err(err).Str("func", "todoClient.Logout").Msg("failed to remove persisted token")
		deleteErr = fmt.Errorf("%w: %w", ErrSaveSettings, err)
	}

	session := c.updateSession(func(s *models.Session) {
		s.Token = ""
		s.Authenticated = false
		s.TokenExpiresAt = nil
	})
	c.publishSession(session)

	if c.caps.RequiresAuthentication {
		c.mu.Lock()
		c.todos = nil
		c.mu.Unlock()
		c.publish(models.TodosUnavailable{Message: app.MsgAuthRequired, Unauthorized: true})
	}

	c.postSuccess(app.MsgLoggedOut)

	return deleteErr
}
