// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// MessageSender delivers messages into a running program. *tea.Program
// implements it.
type MessageSender interface {
	Send(msg tea.Msg)
}

// PromptConfirmer implements service.Confirmer by showing a yes/no overlay
// in the terminal UI. It is created before the program exists and bound to
// it once the program is built; until then every prompt is declined.
type PromptConfirmer struct {
	mu     sync.RWMutex
	sender MessageSender
}

func NewPromptConfirmer() *PromptConfirmer {
	return &PromptConfirmer{}
}

// Bind attaches the confirmer to the program that renders the overlay.
func (c *PromptConfirmer) Bind(sender MessageSender) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sender = sender
}

// Confirm blocks until the user answers. A cancelled ctx counts as "no".
func (c *PromptConfirmer) Confirm(ctx context.Context, prompt string) bool {
	c.mu.RLock()
	sender := c.sender
	c.mu.RUnlock()

	if sender == nil {
		return false
	}

	reply := make(chan bool, 1)
	sender.Send(confirmRequestMsg{prompt: prompt, reply: reply})

	select {
	case ok := <-reply:
		return ok
	case <-ctx.Done():
		return false
	}
}

func renderConfirm(t theme, prompt string) string {
	content := t.title.Render("Confirm") + "\n\n" + prompt + "\n\n" + t.muted.Render("y yes    n no")
	return t.overlay.Render(content)
}
