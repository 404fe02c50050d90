// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func protectedHandler() (http.Handler, *bool) {
	called := new(bool)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	}), called
}

func TestRequireToken_PlainToken(t *testing.T) {
	inner, called := protectedHandler()
	handler := RequireToken("secreto")(inner)

	t.Run("valid token passes", func(t *testing.T) {
		*called = false
		req := httptest.NewRequest(http.MethodGet, "/admin/api/about", nil)
		req.Header.Set("Authorization", "Bearer secreto")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("status: got %d, want 200", rr.Code)
		}
		if !*called {
			t.Error("inner handler not called")
		}
	})

	t.Run("wrong token rejected", func(t *testing.T) {
		*called = false
		req := httptest.NewRequest(http.MethodGet, "/admin/api/about", nil)
		req.Header.Set("Authorization", "Bearer otro")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("status: got %d, want 401", rr.Code)
		}
		if *called {
			t.Error("inner handler called with bad token")
		}
	})

	t.Run("missing header rejected", func(t *testing.T) {
		*called = false
		req := httptest.NewRequest(http.MethodGet, "/admin/api/about", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("status: got %d, want 401", rr.Code)
		}
	})

	t.Run("non-bearer scheme rejected", func(t *testing.T) {
		*called = false
		req := httptest.NewRequest(http.MethodGet, "/admin/api/about", nil)
		req.Header.Set("Authorization", "Basic secreto")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("status: got %d, want 401", rr.Code)
		}
	})
}

func TestRequireToken_BcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	inner, called := protectedHandler()
	handler := RequireToken(string(hash))(inner)

	req := httptest.NewRequest(http.MethodGet, "/admin/api/about", nil)
	req.Header.Set("Authorization", "Bearer secreto")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rr.Code)
	}
	if !*called {
		t.Error("inner handler not called with matching token")
	}

	req = httptest.NewRequest(http.MethodGet, "/admin/api/about", nil)
	req.Header.Set("Authorization", "Bearer equivocado")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401 for wrong token", rr.Code)
	}
}
