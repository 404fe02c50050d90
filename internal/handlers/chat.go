// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"pjoxante/internal/chat"
)

// maxChatMessageLen bounds a single visitor message.
const maxChatMessageLen = 2000

// Chat serves the assistant widget endpoint.
type Chat struct {
	Service *chat.Service
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatReply struct {
	Reply string `json:"reply"`
}

// Post handles POST /api/chat. The reply is always 200: provider
// failures are absorbed into the canned fallback inside the service.
func (h *Chat) Post(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "El cuerpo de la solicitud no es válido.")
		return
	}

	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		writeError(w, http.StatusBadRequest, "El mensaje no puede estar vacío.")
		return
	}
	if utf8.RuneCountInString(msg) > maxChatMessageLen {
		writeError(w, http.StatusBadRequest, "El mensaje es demasiado largo.")
		return
	}

	writeData(w, chatReply{Reply: h.Service.Answer(r.Context(), msg)})
}
