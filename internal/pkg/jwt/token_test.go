package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fleetline/dispatch/internal/pkg/models"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "dispatch-test",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testJWTConfig()

	token, expiresAt, err := GenerateToken("42", models.RoleAdmin, cfg)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	claims, err := ValidateToken(token, cfg.Secret)
	assert.NoError(t, err)
	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	token, _, err := GenerateToken("42", models.RoleDriver, cfg)
	assert.NoError(t, err)

	claims, err := ValidateToken(token, "another-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Expiration = -10

	token, _, err := GenerateToken("42", models.RoleDriver, cfg)
	assert.NoError(t, err)

	claims, err := ValidateToken(token, cfg.Secret)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Malformed(t *testing.T) {
	claims, err := ValidateToken("not-a-token", "test-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
