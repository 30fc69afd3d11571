package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rajudas/field-sales-api/internal/auth"
	"github.com/rajudas/field-sales-api/internal/entity"
)

type contextKey string

const claimsKey contextKey = "claims"

// Authenticator validates the bearer token and stores its claims on the
// request context.
func Authenticator(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			claims, err := auth.ValidateToken(token, secret)
			if err != nil {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates admin-only routes. Must run after Authenticator.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())
		if claims == nil || claims.Role != entity.RoleAdmin {
			http.Error(w, "admin privileges required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClaimsFromContext returns the authenticated claims, or nil outside the
// Authenticator middleware.
func ClaimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}

// UserFromContext rebuilds the viewer identity from the token claims.
func UserFromContext(ctx context.Context) *entity.User {
	claims := ClaimsFromContext(ctx)
	if claims == nil {
		return nil
	}
	return &entity.User{
		Username: claims.Username,
		Role:     claims.Role,
		FullName: claims.FullName,
	}
}
