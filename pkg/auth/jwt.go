package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"

	"github.com/sigmapilot/lens/pkg/config"
)

// jwtAuthenticator verifies RS256/ES256/HS256 bearer tokens. Keys come from
// a JWKS endpoint, a PEM public key, or a shared HS secret, in that order of
// precedence.
type jwtAuthenticator struct {
	keyfunc    jwt.Keyfunc
	parser     *jwt.Parser
	scopeClaim string
}

func newJWTAuthenticator(cfg config.AuthConfig) (*jwtAuthenticator, error) {
	kf, err := buildKeyfunc(cfg)
	if err != nil {
		return nil, err
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"RS256", "ES256", "HS256"}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	return &jwtAuthenticator{
		keyfunc:    kf,
		parser:     jwt.NewParser(opts...),
		scopeClaim: cfg.ScopeClaim,
	}, nil
}

func buildKeyfunc(cfg config.AuthConfig) (jwt.Keyfunc, error) {
	switch {
	case cfg.JWKSURL != "":
		jwks, err := keyfunc.NewDefault([]string{cfg.JWKSURL})
		if err != nil {
			return nil, fmt.Errorf("failed to load JWKS from %s: %w", cfg.JWKSURL, err)
		}
		return jwks.Keyfunc, nil

	case cfg.PublicKey != "":
		pem := []byte(cfg.PublicKey)
		if key, err := jwt.ParseRSAPublicKeyFromPEM(pem); err == nil {
			return func(*jwt.Token) (interface{}, error) { return key, nil }, nil
		}
		key, err := jwt.ParseECPublicKeyFromPEM(pem)
		if err != nil {
			return nil, fmt.Errorf("AUTH_JWT_PUBLIC_KEY is neither an RSA nor an EC public key: %w", err)
		}
		return func(*jwt.Token) (interface{}, error) { return key, nil }, nil

	case cfg.Secret != "":
		secret := []byte(cfg.Secret)
		return func(*jwt.Token) (interface{}, error) { return secret, nil }, nil

	default:
		return nil, fmt.Errorf("jwt mode requires a JWKS URL, public key or secret")
	}
}

func (a *jwtAuthenticator) Authenticate(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	claims := jwt.MapClaims{}
	parsed, err := a.parser.ParseWithClaims(token, claims, a.keyfunc)
	if err != nil || !parsed.Valid {
		return nil, ErrUnauthorized
	}
	if _, ok := claims["iat"]; !ok {
		return nil, ErrUnauthorized
	}

	scopes := extractScopes(claims[a.scopeClaim])
	if len(scopes) == 0 {
		return nil, ErrUnauthorized
	}

	subject, _ := claims["sub"].(string)
	return &Identity{Subject: subject, Scopes: scopes}, nil
}

// extractScopes accepts the claim as a space-separated string or a list.
// Unknown scope strings are dropped.
func extractScopes(claim interface{}) []string {
	var raw []string
	switch v := claim.(type) {
	case string:
		raw = strings.Fields(v)
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	case []string:
		raw = v
	}

	var scopes []string
	for _, s := range raw {
		for _, known := range allScopes {
			if s == known {
				scopes = append(scopes, s)
				break
			}
		}
	}
	return scopes
}
