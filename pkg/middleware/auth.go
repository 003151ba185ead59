package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/goldenaura/pkg/auth"
	"github.com/shashiranjanraj/goldenaura/pkg/response"
)

type userIDKey struct{}
type roleKey struct{}

// UserLoader resolves a token's user id to the fresh role and blocked
// flag. Wired by the app kernel to the user repository; the indirection
// keeps this package free of database imports.
var UserLoader func(id uint) (role string, blocked bool, err error)

// AuthMiddleware requires a valid bearer token. It re-reads the user
// record so a block takes effect immediately, not at token expiry.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := authenticate(r)
		if !ok {
			response.Unauthorized(w)
			return
		}

		role := claims.Role
		if UserLoader != nil {
			freshRole, blocked, err := UserLoader(claims.UserID)
			if err != nil {
				response.Unauthorized(w)
				return
			}
			if blocked {
				response.Forbidden(w)
				return
			}
			role = freshRole
		}

		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), claims.UserID, role)))
	})
}

// OptionalAuth attaches the identity when a valid token is present and
// passes the request through anonymously otherwise. Used on checkout
// endpoints where guest purchases are allowed.
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if claims, ok := authenticate(r); ok {
			role := claims.Role
			if UserLoader != nil {
				freshRole, blocked, err := UserLoader(claims.UserID)
				if err != nil || blocked {
					next.ServeHTTP(w, r) // treat as anonymous
					return
				}
				role = freshRole
			}
			r = r.WithContext(withIdentity(r.Context(), claims.UserID, role))
		}
		next.ServeHTTP(w, r)
	})
}

func authenticate(r *http.Request) (*auth.Claims, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, false
	}

	claims, err := auth.ValidateToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return nil, false
	}
	return claims, true
}

func withIdentity(ctx context.Context, userID uint, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey{}, userID)
	return context.WithValue(ctx, roleKey{}, role)
}

// UserIDFromCtx returns the authenticated user id, if any.
func UserIDFromCtx(r *http.Request) (uint, bool) {
	id, ok := r.Context().Value(userIDKey{}).(uint)
	return id, ok
}

// RoleFromCtx returns the authenticated user's role, if any.
func RoleFromCtx(r *http.Request) (string, bool) {
	role, ok := r.Context().Value(roleKey{}).(string)
	return role, ok
}

// IsAdmin reports whether the request carries an admin identity.
func IsAdmin(r *http.Request) bool {
	role, ok := RoleFromCtx(r)
	return ok && role == "admin"
}
