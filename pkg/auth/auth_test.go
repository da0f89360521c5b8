package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigmapilot/lens/pkg/config"
)

func TestParseBearer(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc123", "abc123", true},
		{"bearer abc123", "abc123", true},
		{"BEARER abc123", "abc123", true},
		{"Bearer", "", false},
		{"Bearer a b", "", false},
		{"Basic abc123", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		token, ok := ParseBearer(tt.header)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.token, token, tt.header)
	}
}

func TestIdentity_HasScope(t *testing.T) {
	admin := &Identity{Subject: "admin", Scopes: []string{ScopeAdmin}}
	assert.True(t, admin.HasScope(ScopeSubmit))
	assert.True(t, admin.HasScope(ScopeRead))
	assert.True(t, admin.HasScope(ScopeAdmin))

	submit := &Identity{Subject: "submit", Scopes: []string{ScopeSubmit}}
	assert.True(t, submit.HasScope(ScopeSubmit))
	assert.False(t, submit.HasScope(ScopeRead))
	assert.False(t, submit.HasScope(ScopeAdmin))

	read := &Identity{Subject: "read", Scopes: []string{ScopeRead}}
	assert.False(t, read.HasScope(ScopeSubmit))
	assert.True(t, read.HasScope(ScopeRead))
}

func TestNoneMode(t *testing.T) {
	a, err := New(config.AuthConfig{Mode: "none"})
	require.NoError(t, err)

	id, err := a.Authenticate(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "anonymous", id.Subject)
	assert.True(t, id.HasScope(ScopeSubmit))
	assert.True(t, id.HasScope(ScopeRead))
	assert.True(t, id.HasScope(ScopeAdmin))
}

func TestPSKMode(t *testing.T) {
	a, err := New(config.AuthConfig{
		Mode:        "psk",
		TokenAdmin:  "admin-secret",
		TokenSubmit: "submit-secret",
		TokenRead:   "read-secret",
	})
	require.NoError(t, err)
	ctx := context.Background()

	id, err := a.Authenticate(ctx, "admin-secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", id.Subject)
	assert.True(t, id.HasScope(ScopeRead))

	id, err = a.Authenticate(ctx, "submit-secret")
	require.NoError(t, err)
	assert.Equal(t, "submit", id.Subject)
	assert.False(t, id.HasScope(ScopeRead))

	id, err = a.Authenticate(ctx, "read-secret")
	require.NoError(t, err)
	assert.Equal(t, "read", id.Subject)

	_, err = a.Authenticate(ctx, "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = a.Authenticate(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func hsToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func baseClaims(scope interface{}) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   "svc-ingest",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
		"scope": scope,
	}
}

func TestJWTMode_HS256(t *testing.T) {
	a, err := New(config.AuthConfig{Mode: "jwt", Secret: "test-secret", ScopeClaim: "scope"})
	require.NoError(t, err)
	ctx := context.Background()

	id, err := a.Authenticate(ctx, hsToken(t, "test-secret", baseClaims("lens:submit lens:read")))
	require.NoError(t, err)
	assert.Equal(t, "svc-ingest", id.Subject)
	assert.True(t, id.HasScope(ScopeSubmit))
	assert.True(t, id.HasScope(ScopeRead))
	assert.False(t, id.HasScope(ScopeAdmin))

	// Scope as a list.
	id, err = a.Authenticate(ctx, hsToken(t, "test-secret", baseClaims([]string{"lens:admin"})))
	require.NoError(t, err)
	assert.True(t, id.HasScope(ScopeAdmin))

	// Wrong key.
	_, err = a.Authenticate(ctx, hsToken(t, "other-secret", baseClaims("lens:read")))
	assert.ErrorIs(t, err, ErrUnauthorized)

	// Garbage.
	_, err = a.Authenticate(ctx, "not.a.token")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestJWTMode_RequiredClaims(t *testing.T) {
	a, err := New(config.AuthConfig{Mode: "jwt", Secret: "test-secret", ScopeClaim: "scope"})
	require.NoError(t, err)
	ctx := context.Background()

	// Expired.
	claims := baseClaims("lens:read")
	claims["exp"] = time.Now().Add(-time.Minute).Unix()
	_, err = a.Authenticate(ctx, hsToken(t, "test-secret", claims))
	assert.ErrorIs(t, err, ErrUnauthorized)

	// Missing exp.
	claims = baseClaims("lens:read")
	delete(claims, "exp")
	_, err = a.Authenticate(ctx, hsToken(t, "test-secret", claims))
	assert.ErrorIs(t, err, ErrUnauthorized)

	// Missing iat.
	claims = baseClaims("lens:read")
	delete(claims, "iat")
	_, err = a.Authenticate(ctx, hsToken(t, "test-secret", claims))
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestJWTMode_ScopeFiltering(t *testing.T) {
	a, err := New(config.AuthConfig{Mode: "jwt", Secret: "test-secret", ScopeClaim: "scope"})
	require.NoError(t, err)
	ctx := context.Background()

	// Unknown scopes drop silently.
	id, err := a.Authenticate(ctx, hsToken(t, "test-secret", baseClaims("openid lens:read profile")))
	require.NoError(t, err)
	assert.Equal(t, []string{ScopeRead}, id.Scopes)

	// Zero valid scopes is unauthenticated.
	_, err = a.Authenticate(ctx, hsToken(t, "test-secret", baseClaims("openid profile")))
	assert.ErrorIs(t, err, ErrUnauthorized)

	// Missing claim entirely.
	claims := baseClaims(nil)
	delete(claims, "scope")
	_, err = a.Authenticate(ctx, hsToken(t, "test-secret", claims))
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestJWTMode_IssuerAudience(t *testing.T) {
	a, err := New(config.AuthConfig{
		Mode: "jwt", Secret: "test-secret", ScopeClaim: "scope",
		Issuer: "https://auth.sigmapilot.io", Audience: "lens",
	})
	require.NoError(t, err)
	ctx := context.Background()

	claims := baseClaims("lens:read")
	claims["iss"] = "https://auth.sigmapilot.io"
	claims["aud"] = "lens"
	_, err = a.Authenticate(ctx, hsToken(t, "test-secret", claims))
	require.NoError(t, err)

	claims["iss"] = "https://evil.example.com"
	_, err = a.Authenticate(ctx, hsToken(t, "test-secret", claims))
	assert.ErrorIs(t, err, ErrUnauthorized)

	claims["iss"] = "https://auth.sigmapilot.io"
	claims["aud"] = "other"
	_, err = a.Authenticate(ctx, hsToken(t, "test-secret", claims))
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestJWTMode_RS256PublicKey(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	a, err := New(config.AuthConfig{Mode: "jwt", PublicKey: string(pubPEM), ScopeClaim: "scope"})
	require.NoError(t, err)

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, baseClaims("lens:admin")).SignedString(key)
	require.NoError(t, err)

	id, err := a.Authenticate(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, id.HasScope(ScopeAdmin))
}

func TestJWTMode_AlgorithmConfusion(t *testing.T) {
	// An HS256 token must not verify against an RSA-key authenticator.
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	a, err := New(config.AuthConfig{Mode: "jwt", PublicKey: string(pubPEM), ScopeClaim: "scope"})
	require.NoError(t, err)

	_, err = a.Authenticate(context.Background(), hsToken(t, string(pubPEM), baseClaims("lens:admin")))
	assert.ErrorIs(t, err, ErrUnauthorized)
}
