// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── HTTPClient ───────────────────────────────────────────────────────────────

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", time.Second)
	client2 := NewHTTPClient("http://a", time.Second)

	require.NotNil(t, client1.Client)
	assert.NotSame(t, client1.Client, client2.Client)
	assert.Equal(t, time.Second, client1.GetClient().Timeout)
}

func TestNewHTTPClient_RequestIDHeader(t *testing.T) {
	var (
		mu  sync.Mutex
		got []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		got = append(got, r.Header.Get(RequestIDHeader))
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)

	_, err := client.R().Get("/generated")
	require.NoError(t, err)

	ctx := WithRequestID(context.Background(), "fixed-id")
	_, err = client.R().SetContext(ctx).Get("/from-context")
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, got, 2)
	parsed, err := uuid.Parse(got[0])
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.Equal(t, "fixed-id", got[1])
}

// ── Context ──────────────────────────────────────────────────────────────────

func TestGetRequestIDFromContext(t *testing.T) {
	_, ok := GetRequestIDFromContext(context.Background())
	assert.False(t, ok)

	_, ok = GetRequestIDFromContext(WithRequestID(context.Background(), ""))
	assert.False(t, ok)

	id, ok := GetRequestIDFromContext(WithRequestID(context.Background(), "abc"))
	assert.True(t, ok)
	assert.Equal(t, "abc", id)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestTokenFingerprint(t *testing.T) {
	assert.Empty(t, TokenFingerprint(""))

	fp := TokenFingerprint("secret-token")
	assert.Len(t, fp, 12)
	assert.Equal(t, fp, TokenFingerprint("secret-token"))
	assert.NotEqual(t, fp, TokenFingerprint("other-token"))
	assert.NotContains(t, fp, "secret")
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("any-key"))
	require.NoError(t, err)

	got, err := TokenExpiry(signed)
	require.NoError(t, err)
	assert.True(t, exp.Equal(got))
}

func TestTokenExpiry_NoClaim(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "42",
	}).SignedString([]byte("any-key"))
	require.NoError(t, err)

	_, err = TokenExpiry(signed)
	assert.ErrorIs(t, err, ErrNoExpiry)
}

func TestTokenExpiry_OpaqueToken(t *testing.T) {
	_, err := TokenExpiry("plain-api-key")
	assert.Error(t, err)
}
