// Package middleware provides HTTP middleware for authentication and
// authorization.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

const identityKey ContextKey = "identity"

// TokenValidator validates bearer tokens. It is an interface so the
// middleware works with any JWT service implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (Identity, error)
}

// Identity exposes the authenticated principal from token claims.
type Identity interface {
	GetUserID() uuid.UUID
	GetRole() string
}

// Auth validates the Authorization bearer token and stores the identity in
// the request context.
func Auth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			identity, err := validator.ValidateToken(strings.TrimSpace(parts[1]))
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects requests whose authenticated identity does not carry
// the given role. It must run inside Auth.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := GetIdentity(r)
			if err != nil || identity.GetRole() != role {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetIdentity extracts the authenticated identity from the request context.
func GetIdentity(r *http.Request) (Identity, error) {
	identity, ok := r.Context().Value(identityKey).(Identity)
	if !ok {
		return nil, fmt.Errorf("identity not found in request context")
	}
	return identity, nil
}
