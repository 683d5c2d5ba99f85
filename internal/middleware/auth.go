package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/SaiAmirthesh/Looped-sub000/internal/logger"
	"github.com/SaiAmirthesh/Looped-sub000/internal/store"
	"github.com/SaiAmirthesh/Looped-sub000/internal/utils"
)

// Context keys
type contextKey string

const (
	userIDContextKey = contextKey("userID")
	tokenContextKey  = contextKey("token")
)

// SessionResolver maps a session token to its user.
type SessionResolver interface {
	GetSessionUserID(ctx context.Context, token string, now time.Time) (string, error)
}

// AuthMiddleware validates the token and puts the user ID in the request context
func AuthMiddleware(sessions SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := utils.GetToken(r)
			if err != nil {
				utils.Error(w, http.StatusUnauthorized, "missing authorization token")
				return
			}

			userID, err := sessions.GetSessionUserID(r.Context(), token, time.Now())
			if errors.Is(err, store.ErrNotFound) {
				utils.Error(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			if err != nil {
				utils.Error(w, http.StatusInternalServerError, "could not validate token", err)
				return
			}

			logger.Debug("[AuthMiddleware] user %s", userID)

			// Inject user and token into the context
			ctx := context.WithValue(r.Context(), userIDContextKey, userID)
			ctx = context.WithValue(ctx, tokenContextKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithUserID stores a user ID in ctx.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

// GetUserIDFromContext returns the authenticated user ID
func GetUserIDFromContext(r *http.Request) (string, error) {
	userID, ok := r.Context().Value(userIDContextKey).(string)
	if !ok || userID == "" {
		return "", errors.New("user not found in context")
	}
	return userID, nil
}

// GetTokenFromContext returns the session token of the request
func GetTokenFromContext(r *http.Request) (string, error) {
	token, ok := r.Context().Value(tokenContextKey).(string)
	if !ok || token == "" {
		return "", errors.New("token not found in context")
	}
	return token, nil
}
