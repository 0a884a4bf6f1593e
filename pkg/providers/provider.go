// Package providers wraps the external text-completion capability behind a
// single Complete call. The dialogue layer treats it as opaque: text in,
// text out, ErrUpstream on any failure.
package providers

import (
	"context"
	"errors"
)

// ErrUpstream marks network/auth/quota/timeout failures of the completion
// API. The dialogue controller recovers it into a degraded reply; it never
// reaches a transport.
var ErrUpstream = errors.New("completion upstream failure")

// Message is one turn handed to the completion API.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completer is the external completion capability.
type Completer interface {
	// Complete sends the system instructions plus ordered conversation
	// messages and returns the model text unmodified.
	Complete(ctx context.Context, system []string, messages []Message, maxTokens int, temperature float64) (string, error)
}
