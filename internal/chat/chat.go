// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

// Package chat implements the site's assistant widget backend: text in,
// text out. The Service wraps a Responder with a per-request timeout and
// a fixed fallback reply, so a provider outage degrades to the canned
// message instead of an error reaching the visitor.
package chat

import (
	"context"
	"log/slog"
	"time"
)

// FallbackReply is returned whenever no provider is configured or the
// provider call fails or times out.
const FallbackReply = "Gracias por tu mensaje. ¿Cómo puedo ayudarte con nuestros programas?"

// defaultTimeout bounds a single provider call. The widget shows a typing
// indicator meanwhile; past this the visitor gets the fallback reply.
const defaultTimeout = 20 * time.Second

// Responder produces an assistant reply for one visitor message.
type Responder interface {
	Reply(ctx context.Context, message string) (string, error)
}

// Service answers visitor messages through the configured Responder.
type Service struct {
	responder Responder
	timeout   time.Duration
}

// NewService creates a chat service. responder may be nil, in which case
// every message gets the fallback reply.
func NewService(responder Responder) *Service {
	return &Service{responder: responder, timeout: defaultTimeout}
}

// Answer returns the assistant's reply for a visitor message. It never
// returns an error: provider failures are logged and replaced with the
// fallback reply.
func (s *Service) Answer(ctx context.Context, message string) string {
	if s.responder == nil {
		return FallbackReply
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.responder.Reply(ctx, message)
	if err != nil {
		slog.Warn("chat provider failed, using fallback", "error", err)
		return FallbackReply
	}
	if reply == "" {
		return FallbackReply
	}
	return reply
}
