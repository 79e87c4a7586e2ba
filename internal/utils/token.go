// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/blake2b"
)

// ErrNoExpiry is returned by [TokenExpiry] when the token carries no exp claim.
var ErrNoExpiry = errors.New("token has no expiration claim")

// TokenFingerprint returns a short, non-reversible identifier of a bearer
// token suitable for log output. Empty tokens yield an empty fingerprint.
func TokenFingerprint(token string) string {
	if token == "" {
		return ""
	}
	sum := blake2b.Sum256([]byte(token))
	return hex.EncodeToString(sum[:6])
}

// TokenExpiry reads the exp claim of a JWT without verifying its signature.
// The todo API treats tokens as opaque, so a non-JWT token is not an error
// for callers; they only lose the expiry hint.
func TokenExpiry(token string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, err
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, ErrNoExpiry
	}

	return claims.ExpiresAt.Time, nil
}
