package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/phrazzld/taskbook-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            "test-jwt-secret-that-is-32-chars-long",
		TokenLifetimeMinutes: 60,
		BCryptCost:           4,
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)

	short := testAuthConfig()
	short.JWTSecret = "too-short"
	_, err = NewJWTService(short)
	assert.Error(t, err)

	noLifetime := testAuthConfig()
	noLifetime.TokenLifetimeMinutes = 0
	_, err = NewJWTService(noLifetime)
	assert.Error(t, err)
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc, err := newHMACJWTService(testAuthConfig(), fixedClock(issuedAt))
	require.NoError(t, err)

	token, err := svc.GenerateToken(context.Background(), "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, issuedAt.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, issuedAt.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)

	again, err := svc.GenerateToken(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotEqual(t, token, again, "tokens issued in the same second must differ")
}

func TestValidateTokenFailures(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	issuer, err := newHMACJWTService(testAuthConfig(), fixedClock(issuedAt))
	require.NoError(t, err)
	token, err := issuer.GenerateToken(context.Background(), "alice")
	require.NoError(t, err)

	otherCfg := testAuthConfig()
	otherCfg.JWTSecret = "another-secret-that-is-32-chars-long!"
	otherKey, err := newHMACJWTService(otherCfg, fixedClock(issuedAt))
	require.NoError(t, err)

	late, err := newHMACJWTService(testAuthConfig(), fixedClock(issuedAt.Add(2*time.Hour)))
	require.NoError(t, err)

	early, err := newHMACJWTService(testAuthConfig(), fixedClock(issuedAt.Add(-time.Hour)))
	require.NoError(t, err)

	withinSkew, err := newHMACJWTService(testAuthConfig(), fixedClock(issuedAt.Add(time.Hour+time.Minute)))
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   "alice",
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		svc     *hmacJWTService
		token   string
		wantErr error
	}{
		{"empty token", issuer, "", ErrMissingToken},
		{"garbage", issuer, "not-a-jwt", ErrInvalidToken},
		{"wrong key", otherKey, token, ErrInvalidToken},
		{"expired", late, token, ErrExpiredToken},
		{"issued in the future", early, token, ErrTokenNotYetValid},
		{"unsigned", issuer, noneToken, ErrInvalidToken},
		{"within clock skew", withinSkew, token, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tt.svc.ValidateToken(context.Background(), tt.token)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, "alice", claims.Subject)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, claims)
		})
	}
}
