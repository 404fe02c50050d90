// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// RequireToken guards the admin API with a bearer token. The configured
// value may be the token itself or a bcrypt hash of it (recognized by the
// "$2" prefix), so deployments never have to store the plain token.
func RequireToken(configured string) func(http.Handler) http.Handler {
	hashed := strings.HasPrefix(configured, "$2")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok || !tokenMatches(configured, hashed, token) {
				w.Header().Set("WWW-Authenticate", "Bearer")
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(auth, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}

func tokenMatches(configured string, hashed bool, token string) bool {
	if hashed {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(token)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(configured), []byte(token)) == 1
}
