package auth

import (
	"testing"
	"time"

	"stash/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret-key"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.GenerateToken(42, "testuser@gmail.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "testuser@gmail.com", claims.Email)
	assert.Equal(t, "42", claims.Subject)
	// Expiry is set 15 minutes out from issuance.
	assert.WithinDuration(t, claims.IssuedAt.Add(15*time.Minute), claims.ExpiresAt.Time, time.Second)
}

func TestJWTService_ValidateToken_Malformed(t *testing.T) {
	svc := newTestJWTService(t)

	_, err := svc.ValidateToken("not.a.token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.GenerateToken(1, "testuser@gmail.com")
	require.NoError(t, err)

	other := &jwtService{secret: "a-different-secret", ttl: accessTokenTTL}
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	// A negative TTL produces a token that is already expired.
	expired := &jwtService{secret: "test-secret-key", ttl: -time.Minute}

	token, err := expired.GenerateToken(1, "testuser@gmail.com")
	require.NoError(t, err)

	svc := newTestJWTService(t)
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
