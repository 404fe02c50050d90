// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the Casa Pjoxante site.
// Handlers are grouped by concern (public, admin, chat) and receive their
// dependencies through the handler struct. Every endpoint answers with
// the same JSON envelope the frontend consumes: {"data": ..., "error": ...}.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"pjoxante/internal/store"
)

// apiResponse is the JSON envelope for every API endpoint. Exactly one of
// Data and Error is meaningful: failures carry a message, never a payload.
type apiResponse struct {
	Data  any    `json:"data"`
	Error string `json:"error,omitempty"`
}

// maxBodySize caps JSON request bodies. Section copy and Markdown posts
// are text; anything bigger than this is not a legitimate save.
const maxBodySize = 1 << 20

// writeJSON serializes the envelope with the given status code.
func writeJSON(w http.ResponseWriter, status int, resp apiResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// writeData answers 200 with a data payload.
func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, apiResponse{Data: data})
}

// writeError answers with an error message in the envelope.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, apiResponse{Error: msg})
}

// writeStoreError maps store errors onto HTTP statuses.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "No se encontró el registro.")
	case errors.Is(err, store.ErrNoFields):
		writeError(w, http.StatusBadRequest, "No hay campos para actualizar.")
	default:
		writeError(w, http.StatusInternalServerError, "Error al guardar los datos.")
	}
}

// decodeJSON decodes a request body into dst, rejecting unknown fields
// and oversized bodies.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// idParam parses the {id} route parameter as a UUID.
func idParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}
