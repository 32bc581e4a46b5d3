package middleware

import (
	"errors"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/tracklight/timesheet-backend-go/internal/domain/user"
	"github.com/tracklight/timesheet-backend-go/internal/handler/http/response"
)

var errNoIdentity = errors.New("no authenticated identity in request")

// UserID extracts the authenticated user's ID from the JWT claims.
func UserID(r *http.Request) (int64, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0, err
	}
	// Numeric claims decode as float64.
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, errNoIdentity
	}
	return int64(id), nil
}

func roleFromClaims(r *http.Request) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	role, ok := user.ParseRole(roleStr)
	return role, ok
}

// RequireManager restricts a route group to managers.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromClaims(r)
		if !ok || role != user.RoleManager {
			response.Forbidden(w, "Manager access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin restricts a route group to administrators.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromClaims(r)
		if !ok || role != user.RoleAdmin {
			response.Forbidden(w, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
