package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "user@tcp(localhost:3306)/auth?parseTime=true")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("JWT_ALGORITHM", "")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "")
	t.Setenv("BCRYPT_COST", "")

	cfg := Load()

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "HS256", cfg.JWTAlgorithm)
	assert.Equal(t, 1440, cfg.AccessTTLMin)
	assert.Equal(t, 0, cfg.BcryptCost)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("JWT_ALGORITHM", "HS512")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "15")
	t.Setenv("BCRYPT_COST", "12")

	cfg := Load()

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "HS512", cfg.JWTAlgorithm)
	assert.Equal(t, 15, cfg.AccessTTLMin)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	setRequired(t)
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "not-a-number")

	cfg := Load()
	assert.Equal(t, 1440, cfg.AccessTTLMin)
}
