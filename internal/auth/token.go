// Package auth handles session tokens and identity extraction.
// It is the only package that knows identities travel as JWTs; everything
// downstream of the middleware sees identity as a plain string in the
// request context, with "" meaning anonymous.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// identityKey is the context key under which the verified identity is stored.
type identityKey struct{}

// Tokens issues and verifies HS256-signed session tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

// NewTokens constructs a Tokens with the given signing secret and token lifetime.
func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl}
}

// Issue signs a session token for the given identity.
func (t *Tokens) Issue(email string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("auth.Tokens.Issue: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a session token, returning the identity it
// carries. Expired, malformed, or foreign-signed tokens all fail.
func (t *Tokens) Verify(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("auth.Tokens.Verify: %w", err)
	}
	if !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("auth.Tokens.Verify: invalid token")
	}
	return claims.Subject, nil
}

// WithIdentity returns a context carrying the given identity.
// Exported so handler tests can simulate an authenticated request.
func WithIdentity(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, identityKey{}, email)
}

// Identity returns the verified identity stored in ctx, or "" when the
// request is anonymous.
func Identity(ctx context.Context) string {
	if v, ok := ctx.Value(identityKey{}).(string); ok {
		return v
	}
	return ""
}

// Middleware extracts a Bearer token from the Authorization header and, when
// it verifies, stores the identity in the request context.
//
// It never rejects a request: a missing or invalid token just proceeds
// anonymously, because anonymous actors are first-class here (they can read
// any directory that names an explicit subject). Handlers that do require a
// session check Identity themselves.
func (t *Tokens) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if raw, ok := strings.CutPrefix(header, "Bearer "); ok {
				if email, err := t.Verify(raw); err == nil {
					r = r.WithContext(WithIdentity(r.Context(), email))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
