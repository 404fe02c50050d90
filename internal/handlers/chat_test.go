// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pjoxante/internal/chat"
)

// echoResponder replies with a fixed string for any message.
type echoResponder struct {
	reply string
}

func (e *echoResponder) Reply(_ context.Context, _ string) (string, error) {
	return e.reply, nil
}

func postChat(t *testing.T, h *Chat, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Post(rr, req)
	return rr
}

func TestChatPostReturnsReply(t *testing.T) {
	h := &Chat{Service: chat.NewService(&echoResponder{reply: "Hola, ¿en qué puedo ayudar?"})}

	rr := postChat(t, h, `{"message":"¿Qué cursos tienen?"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}

	var resp struct {
		Data struct {
			Reply string `json:"reply"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Reply != "Hola, ¿en qué puedo ayudar?" {
		t.Errorf("reply: got %q", resp.Data.Reply)
	}
}

func TestChatPostFallsBackWithoutProvider(t *testing.T) {
	h := &Chat{Service: chat.NewService(nil)}

	rr := postChat(t, h, `{"message":"hola"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), chat.FallbackReply) {
		t.Errorf("expected fallback reply, got %s", rr.Body.String())
	}
}

func TestChatPostRejectsBadInput(t *testing.T) {
	h := &Chat{Service: chat.NewService(nil)}

	for name, body := range map[string]string{
		"empty message": `{"message":"   "}`,
		"no body":       ``,
		"unknown field": `{"message":"hola","admin":true}`,
		"too long":      `{"message":"` + strings.Repeat("a", maxChatMessageLen+1) + `"}`,
	} {
		rr := postChat(t, h, body)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: status got %d, want 400", name, rr.Code)
		}
	}
}
