// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Persisted setting keys of the local key-value store.
const (
	SettingToken    = "todoToken"
	SettingDarkMode = "darkMode"
)

// Session is the client-side view of the current user session.
type Session struct {
	// Token is the bearer credential. Empty means absent.
	Token string

	// Authenticated is true only after a probe with the current Token
	// succeeded, and is reset by any authorization failure.
	Authenticated bool

	// PrivateMode is the last value reported by the server.
	PrivateMode bool

	// DarkMode is the local theme preference.
	DarkMode bool

	// TokenExpiresAt is set when Token is a JWT carrying an exp claim.
	TokenExpiresAt *time.Time
}

// HasToken reports whether a bearer token is present.
func (s Session) HasToken() bool {
	return s.Token != ""
}
