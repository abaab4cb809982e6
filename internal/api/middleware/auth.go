package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rmarchan/ReservaCanchasService/internal/api/handlers"
	"github.com/rmarchan/ReservaCanchasService/internal/domain"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userRoleKey contextKey = "userRole"

	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"
)

// Auth requires an X-User-ID header on every protected route. The optional
// X-User-Role header defaults to the customer role.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawID := r.Header.Get(headerUserID)
		if rawID == "" {
			handlers.RespondUnauthorized(w)
			return
		}
		userID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w)
			return
		}

		role := r.Header.Get(headerUserRole)
		if role == "" {
			role = domain.RoleCustomer
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, userRoleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID returns the authenticated user id, or 0 when absent.
func UserID(ctx context.Context) int64 {
	id, _ := ctx.Value(userIDKey).(int64)
	return id
}

// UserRole returns the caller's role, or the customer role when absent.
func UserRole(ctx context.Context) string {
	role, _ := ctx.Value(userRoleKey).(string)
	if role == "" {
		return domain.RoleCustomer
	}
	return role
}
