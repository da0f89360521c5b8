// Package auth verifies bearer credentials and resolves them to scoped
// identities. Three modes: none (open), psk (static tokens) and jwt.
package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/sigmapilot/lens/pkg/config"
)

// Scopes. Admin implies all; submit and read do not imply each other.
const (
	ScopeSubmit = "lens:submit"
	ScopeRead   = "lens:read"
	ScopeAdmin  = "lens:admin"
)

var allScopes = []string{ScopeSubmit, ScopeRead, ScopeAdmin}

// ErrUnauthorized means the credential is missing, malformed or invalid.
var ErrUnauthorized = errors.New("authentication required")

// Identity is a verified caller.
type Identity struct {
	Subject string
	Scopes  []string
}

// HasScope reports whether the identity may use the given scope.
func (id *Identity) HasScope(scope string) bool {
	for _, s := range id.Scopes {
		if s == scope || s == ScopeAdmin {
			return true
		}
	}
	return false
}

// Authenticator resolves a bearer token to an identity.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*Identity, error)
}

// New builds the authenticator for the configured mode.
func New(cfg config.AuthConfig) (Authenticator, error) {
	switch cfg.Mode {
	case "none":
		return &noneAuthenticator{}, nil
	case "psk":
		return newPSKAuthenticator(cfg), nil
	case "jwt":
		return newJWTAuthenticator(cfg)
	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.Mode)
	}
}

// ParseBearer extracts the token from an Authorization header value:
// exactly two space-separated parts, scheme case-insensitive.
func ParseBearer(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// noneAuthenticator grants every caller every scope.
type noneAuthenticator struct{}

func (a *noneAuthenticator) Authenticate(ctx context.Context, token string) (*Identity, error) {
	return &Identity{Subject: "anonymous", Scopes: allScopes}, nil
}

// pskAuthenticator matches the bearer token against the three configured
// static tokens. Tokens are compared as SHA-256 digests in constant time.
type pskAuthenticator struct {
	tokens []pskToken
}

type pskToken struct {
	hash    [sha256.Size]byte
	subject string
	scopes  []string
}

func newPSKAuthenticator(cfg config.AuthConfig) *pskAuthenticator {
	a := &pskAuthenticator{}
	add := func(token, subject string, scopes ...string) {
		if token == "" {
			return
		}
		a.tokens = append(a.tokens, pskToken{
			hash:    sha256.Sum256([]byte(token)),
			subject: subject,
			scopes:  scopes,
		})
	}
	add(cfg.TokenAdmin, "admin", ScopeAdmin)
	add(cfg.TokenSubmit, "submit", ScopeSubmit)
	add(cfg.TokenRead, "read", ScopeRead)
	return a
}

func (a *pskAuthenticator) Authenticate(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	digest := sha256.Sum256([]byte(token))
	for _, t := range a.tokens {
		if subtle.ConstantTimeCompare(digest[:], t.hash[:]) == 1 {
			return &Identity{Subject: t.subject, Scopes: t.scopes}, nil
		}
	}
	return nil, ErrUnauthorized
}
