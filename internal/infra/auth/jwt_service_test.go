package auth

import (
	"testing"
	"time"

	"florist/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_ValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	roles := []string{"user", "admin"}

	token, err := SignAccessToken(testSecret, userID, roles, time.Minute)
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, "access", claims.Type)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	userID := uuid.New()

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name:  "garbage",
			token: func(_ *testing.T) string { return "invalid.token.here" },
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				tok, err := SignAccessToken("another_secret", userID, nil, time.Minute)
				require.NoError(t, err)

				return tok
			},
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				tok, err := SignAccessToken(testSecret, userID, nil, -time.Minute)
				require.NoError(t, err)

				return tok
			},
		},
		{
			name: "refresh token",
			token: func(t *testing.T) string {
				tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
					"sub":  userID.String(),
					"exp":  time.Now().Add(time.Minute).Unix(),
					"type": "refresh",
				}).SignedString([]byte(testSecret))
				require.NoError(t, err)

				return tok
			},
		},
		{
			name: "non uuid subject",
			token: func(t *testing.T) string {
				tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
					"sub": "someone",
					"exp": time.Now().Add(time.Minute).Unix(),
				}).SignedString([]byte(testSecret))
				require.NoError(t, err)

				return tok
			},
		},
		{
			name: "missing expiry",
			token: func(t *testing.T) string {
				tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
					"sub": userID.String(),
				}).SignedString([]byte(testSecret))
				require.NoError(t, err)

				return tok
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := jwtService.ValidateToken(tt.token(t))
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
