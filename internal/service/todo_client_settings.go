// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-todo-client/internal/app"
	"github.com/MKhiriev/go-todo-client/models"
)

// TogglePrivateMode requests desired from the server and adopts whatever the
// server reports. On any failure the control is reverted to the last known
// value.
func (c *todoClient) TogglePrivateMode(ctx context.Context, desired bool) error {
	prior := c.Session().PrivateMode

	token, err := c.requireAccess(app.OpTogglePrivateMode, c.caps.CanToggleMode)
	if err != nil {
		c.publish(models.PrivateModeChanged{Enabled: prior})
		return err
	}

	adopted, err := c.api.SetPrivateMode(ctx, token, desired)
	if err != nil {
		c.publish(models.PrivateModeChanged{Enabled: prior})
		c.handleRemoteError("todoClient.TogglePrivateMode", app.MsgPrivateModeToggleFailed, token, err)
		return mapAdapterError(ErrTogglePrivateMode, err)
	}

	c.updateSession(func(s *models.Session) {
		s.PrivateMode = adopted
	})
	c.publish(models.PrivateModeChanged{Enabled: adopted})

	if adopted {
		c.postSuccess(app.MsgPrivateModeEnabled)
	} else {
		c.postSuccess(app.MsgPrivateModeDisabled)
	}

	// anonymous read permissions may have changed
	if c.tier == models.TierApp {
		return c.LoadTodos(ctx)
	}
	return nil
}

// ToggleDarkMode persists the preference first; the theme only changes once
// it is stored.
func (c *todoClient) ToggleDarkMode(ctx context.Context, desired bool) error {
	if err := c.settings.Set(ctx, models.SettingDarkMode, strconv.FormatBool(desired)); err != nil {
		c.logger.Err(err).Str("func", "todoClient.ToggleDarkMode").Msg("failed to persist theme")
		c.publish(models.ThemeChanged{Dark: c.Session().DarkMode})
		return fmt.Errorf("%w: %w", ErrSaveSettings, err)
	}

	c.updateSession(func(s *models.Session) {
		s.DarkMode = desired
	})
	c.publish(models.ThemeChanged{Dark: desired})

	if desired {
		c.postSuccess(app.MsgDarkModeEnabled)
	} else {
		c.postSuccess(app.MsgLightModeEnabled)
	}
	return nil
}
