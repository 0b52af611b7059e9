package auth

import (
	"testing"
	"time"

	"imobi/config"
	"imobi/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{AccessTokenTTL: ttl},
	}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	cfg := newTestConfig("test_access_secret_key_very_long_for_testing", time.Hour)

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()

	token, err := jwtService.GenerateToken(userID, entity.RoleAdmin)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_InvalidToken(t *testing.T) {
	cfg := newTestConfig("test_access_secret_key_very_long_for_testing", time.Hour)

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	// Garbage input
	claims, err := jwtService.ValidateToken("not.a.token")
	assert.Error(t, err)
	assert.Nil(t, claims)

	// Token signed with a different secret
	otherCfg := newTestConfig("completely_different_secret_key_for_testing", time.Hour)
	otherService, err := NewJWTService(otherCfg)
	assert.NoError(t, err)

	foreign, err := otherService.GenerateToken(uuid.New(), entity.RoleStaff)
	assert.NoError(t, err)

	claims, err = jwtService.ValidateToken(foreign)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := newTestConfig("test_access_secret_key_very_long_for_testing", -time.Minute)

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	token, err := jwtService.GenerateToken(uuid.New(), entity.RoleStaff)
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MissingSecret(t *testing.T) {
	cfg := newTestConfig("", time.Hour)

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
}
