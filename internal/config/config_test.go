package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/andikacv")
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Empty(t, cfg.RedisURL)
	assert.Empty(t, cfg.Cloudinary.CloudName)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/andikacv")
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("REDIS_URL", "redis://localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
}

func TestValidate_BadEnv(t *testing.T) {
	cfg := &Config{DatabaseURL: "postgres://localhost/db", Env: "staging"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_ENV")
}

func TestValidate_PartialCloudinary(t *testing.T) {
	cfg := &Config{
		DatabaseURL: "postgres://localhost/db",
		Env:         "development",
		Cloudinary:  CloudinaryConfig{CloudName: "demo"},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CLOUDINARY_API_KEY")
}

func TestValidate_FullCloudinary(t *testing.T) {
	cfg := &Config{
		DatabaseURL: "postgres://localhost/db",
		Env:         "development",
		Cloudinary:  CloudinaryConfig{CloudName: "demo", APIKey: "k", APISecret: "s"},
	}

	assert.NoError(t, cfg.Validate())
}

func TestIsAdmin(t *testing.T) {
	cfg := &Config{AdminEmails: []string{"admin@andikacv.com"}}

	assert.True(t, cfg.IsAdmin("admin@andikacv.com"))
	assert.True(t, cfg.IsAdmin("ADMIN@andikacv.com"))
	assert.False(t, cfg.IsAdmin("user@andikacv.com"))
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, splitList(" a@x.com , b@x.com "))
}
