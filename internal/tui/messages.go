// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-todo-client/models"

// clientEventMsg carries an event published by the todo client into the
// program loop.
type clientEventMsg struct {
	event models.Event
}

// opDoneMsg is returned by every command that runs a client operation.
type opDoneMsg struct {
	op  operation
	err error
}

type clearStatusMsg struct {
	id int
}

// confirmRequestMsg asks the user a yes/no question on behalf of a blocked
// client operation. Exactly one value is sent on reply.
type confirmRequestMsg struct {
	prompt string
	reply  chan<- bool
}
