package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aditi25bce10868-blip/NexusPrime/internal/service"
)

type contextKey string

const subjectContextKey contextKey = "subject"

const bearerPrefix = "Bearer "

// SubjectFromContext extracts the authenticated subject ID from the request
// context. Returns "" if the request is unauthenticated.
func SubjectFromContext(ctx context.Context) string {
	subject, _ := ctx.Value(subjectContextKey).(string)
	return subject
}

// RequireAuth is middleware that protects routes requiring authentication.
// It extracts the bearer token from the Authorization header, verifies it,
// and injects the resolved subject ID into the request context. Malformed,
// expired, and tampered tokens all receive the same 401 response; the
// distinction is only logged.
func RequireAuth(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			writeError(w, http.StatusUnauthorized, "No token, authorization denied")
			return
		}

		subjectID, err := auth.ValidateToken(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			slog.Debug("token rejected", "reason", err)
			writeError(w, http.StatusUnauthorized, "Token is not valid")
			return
		}

		ctx := context.WithValue(r.Context(), subjectContextKey, subjectID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SecurityHeaders sets conservative browser security headers on every
// response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}
