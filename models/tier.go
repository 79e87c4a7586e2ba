// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// Tier selects which variant of the client is running.
type Tier string

const (
	// TierPublic is the anonymous read-only view.
	TierPublic Tier = "public"
	// TierApp is the regular application: a saved token unlocks writes.
	TierApp Tier = "app"
	// TierAdmin is the admin panel: everything requires a verified session.
	TierAdmin Tier = "admin"
)

// Capabilities describes what a Tier is allowed to do.
type Capabilities struct {
	// CanWrite enables add, update and delete.
	CanWrite bool
	// CanToggleMode enables switching the server-side private mode.
	CanToggleMode bool
	// CanImportExport enables bundle export and import.
	CanImportExport bool
	// UsesToken means the tier reads, sends and stores a bearer token.
	UsesToken bool
	// RequiresAuthentication gates every operation on a probe-verified
	// session instead of mere token presence.
	RequiresAuthentication bool
}

// ParseTier converts a config value into a Tier.
func ParseTier(s string) (Tier, error) {
	switch t := Tier(strings.ToLower(strings.TrimSpace(s))); t {
	case TierPublic, TierApp, TierAdmin:
		return t, nil
	default:
		return "", fmt.Errorf("unknown tier %q", s)
	}
}

// Capabilities returns the capability set of the tier.
func (t Tier) Capabilities() Capabilities {
	switch t {
	case TierAdmin:
		return Capabilities{
			CanWrite:               true,
			CanToggleMode:          true,
			CanImportExport:        true,
			UsesToken:              true,
			RequiresAuthentication: true,
		}
	case TierApp:
		return Capabilities{
			CanWrite:      true,
			CanToggleMode: true,
			UsesToken:     true,
		}
	default:
		return Capabilities{}
	}
}

func (t Tier) String() string {
	return string(t)
}
