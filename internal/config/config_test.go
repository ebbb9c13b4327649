package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("requires jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, ":8080", cfg.Addr())
		assert.Equal(t, "test-secret", cfg.JwtSecret())
		assert.Equal(t, 30*24*time.Hour, cfg.JwtTTL())
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("PORT", "9000")
		t.Setenv("JWT_TTL", "1h")
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_PORT", "5433")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 9000, cfg.Port)
		assert.Equal(t, time.Hour, cfg.JwtTTL())
		assert.Contains(t, cfg.Pg.ConnStr(), "host=db.internal")
		assert.Contains(t, cfg.Pg.ConnStr(), "port=5433")
	})

	t.Run("database url wins over discrete fields", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("DATABASE_URL", "postgres://u:p@host:5432/db?sslmode=disable")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "postgres://u:p@host:5432/db?sslmode=disable", cfg.Pg.ConnStr())
	})
}
