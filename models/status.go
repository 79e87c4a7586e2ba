// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Severity classifies a status banner message.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Status is a transient message shown to the user.
type Status struct {
	Message  string
	Severity Severity
}
