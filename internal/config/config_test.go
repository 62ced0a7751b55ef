package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"port": 9090, "data_dir": "/tmp/th"}`), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "/tmp/th", cfg.DataDir)
		assert.Empty(t, cfg.DatabaseURL)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := LoadConfig("")
		assert.Error(t, err)
	})
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, (&Config{Port: 8080, DataDir: "data"}).Validate())
	assert.NoError(t, (&Config{Port: 8080, DatabaseURL: "postgres://x"}).Validate())
	assert.Error(t, (&Config{Port: 8080}).Validate(), "a storage backend is required")
	assert.Error(t, (&Config{Port: -1, DataDir: "data"}).Validate())
	assert.Error(t, (&Config{Port: 70000, DataDir: "data"}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9090}
	merged := cfg.MergeWithDefaults(Config{Port: 8080, DataDir: "data", GeminiModel: "gemini-1.5-flash"})

	assert.Equal(t, 9090, merged.Port, "explicit values win")
	assert.Equal(t, "data", merged.DataDir)
	assert.Equal(t, "gemini-1.5-flash", merged.GeminiModel)
}

func TestNewJWTConfig(t *testing.T) {
	t.Run("requires secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := NewJWTConfig()
		assert.Error(t, err)
	})

	t.Run("defaults expiration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("JWT_EXPIRATION_HOURS", "")
		cfg, err := NewJWTConfig()
		require.NoError(t, err)
		assert.Equal(t, 24, cfg.ExpirationHours)
	})

	t.Run("rejects non-positive expiration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("JWT_EXPIRATION_HOURS", "0")
		_, err := NewJWTConfig()
		assert.Error(t, err)
	})
}

func TestPasswordConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("BCRYPT_COST", "")
		t.Setenv("PASSWORD_PEPPER", "")
		cfg, err := NewPasswordConfig()
		require.NoError(t, err)
		assert.Equal(t, 12, cfg.BcryptCost)
	})

	t.Run("rejects cost out of range", func(t *testing.T) {
		t.Setenv("BCRYPT_COST", "4")
		_, err := NewPasswordConfig()
		assert.Error(t, err)
	})

	t.Run("hash and verify", func(t *testing.T) {
		cfg := &PasswordConfig{BcryptCost: 10}
		hash, err := cfg.HashPassword("Str0ngPass")
		require.NoError(t, err)
		assert.True(t, cfg.VerifyPassword("Str0ngPass", hash))
		assert.False(t, cfg.VerifyPassword("WrongPass1", hash))
	})

	t.Run("pepper changes the hash input", func(t *testing.T) {
		plain := &PasswordConfig{BcryptCost: 10}
		peppered := &PasswordConfig{BcryptCost: 10, Pepper: "pepper"}

		hash, err := peppered.HashPassword("Str0ngPass")
		require.NoError(t, err)
		assert.True(t, peppered.VerifyPassword("Str0ngPass", hash))
		assert.False(t, plain.VerifyPassword("Str0ngPass", hash))
	})
}
