package middleware

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/lacentralbaja/archivo/internal/jwt"
)

// AdminKeyHeader carries the shared admin key on gated requests.
const AdminKeyHeader = "X-Admin-Key"

// SessionCookie is the admin session cookie minted by the login endpoint.
const SessionCookie = "adminSession"

// AdminGate guards every privileged endpoint with the shared admin key.
// If no key hash is configured the gate fails closed: everything behind it
// answers 401. The response is identical for a missing key, a wrong key and an
// unconfigured gate, so callers learn nothing about the server's setup.
type AdminGate struct {
	keyHash  string
	sessions jwt.SessionService
}

func NewAdminGate(keyHash string, sessions jwt.SessionService) *AdminGate {
	return &AdminGate{keyHash: keyHash, sessions: sessions}
}

// CheckKey reports whether the presented key matches the configured hash.
// bcrypt comparison is constant-time with respect to the key material.
func (g *AdminGate) CheckKey(key string) bool {
	if g.keyHash == "" || key == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(g.keyHash), []byte(key)) == nil
}

func (g *AdminGate) authorized(r *http.Request) bool {
	if g.keyHash == "" {
		return false
	}

	if g.CheckKey(r.Header.Get(AdminKeyHeader)) {
		return true
	}

	if g.sessions != nil {
		if cookie, err := r.Cookie(SessionCookie); err == nil {
			return g.sessions.Validate(cookie.Value) == nil
		}
	}

	return false
}

// Require returns middleware that admits only admin-authenticated requests.
func (g *AdminGate) Require() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !g.authorized(r) {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
