package rest

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/scindn/internal/server/auth"
)

type contextKey string

const userIDKey contextKey = "userID"

// requireAuth authenticates the internal collaborator via a Bearer token and
// stores the caller's user id in the request context.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		userID, err := auth.GetUserIDFromToken(tokenString, s.jwtSecret)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// corsGate resolves the upload token to its project and applies the
// project's origin policy before any request body is read. Tokens that do
// not resolve (unknown, expired or never issued) all produce the same
// generic client error.
func (s *Server) corsGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := chi.URLParam(r, "token")

		link, err := s.registry.Resolve(token)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid upload link")
			return
		}
		entry, err := s.cache.Get(link.Secret)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid upload link")
			return
		}

		origin := r.Header.Get("Origin")
		if origin != "" && slices.Contains(entry.ParsedOrigins, origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "PUT, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
