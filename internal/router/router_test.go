// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pjoxante/internal/chat"
	"pjoxante/internal/handlers"
)

func testRouter() http.Handler {
	return New(Deps{
		Public:     &handlers.Public{},
		Admin:      &handlers.Admin{},
		Chat:       &handlers.Chat{Service: chat.NewService(nil)},
		AdminToken: "secret-token",
	})
}

func TestHealthEndpoint(t *testing.T) {
	rr := httptest.NewRecorder()
	testRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rr.Code)
	}
	if rr.Body.String() != "OK" {
		t.Errorf("body: got %q, want OK", rr.Body.String())
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := testRouter()

	for _, path := range []string{
		"/admin/api/hero",
		"/admin/api/about",
		"/admin/api/projects",
		"/admin/api/blog",
	} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusUnauthorized {
			t.Errorf("%s without token: got %d, want 401", path, rr.Code)
		}
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	rr := httptest.NewRecorder()
	testRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rr.Code)
	}
}
