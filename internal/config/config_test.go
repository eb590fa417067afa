package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "./public/restaurants", cfg.RestaurantsFolder)
	assert.Equal(t, "/public/restaurants", cfg.RestaurantsURLPrefix)
	assert.Equal(t, int64(5<<20), cfg.UploadMaxFileSize)
	assert.True(t, cfg.EnforceRouteAuth)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("RESTAURANTS_FOLDER", "/var/data/restaurants")
	t.Setenv("JWT_TTL", "15m")
	t.Setenv("ROUTES_ENFORCE_AUTH", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Load(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "/var/data/restaurants", cfg.RestaurantsFolder)
	assert.Equal(t, 15*time.Minute, cfg.JWTTTL)
	assert.False(t, cfg.EnforceRouteAuth)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("UPLOAD_MAX_FILE_SIZE=1024\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("UPLOAD_MAX_FILE_SIZE") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(1024), cfg.UploadMaxFileSize)
}

func TestLoad_InvalidTTL(t *testing.T) {
	t.Setenv("JWT_TTL", "soon")

	_, err := Load(noEnvFile(t))
	assert.ErrorContains(t, err, "JWT_TTL")
}

func TestLoad_ProdRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	_, err := Load(noEnvFile(t))
	assert.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("JWT_SECRET", "a-real-secret")
	_, err = Load(noEnvFile(t))
	assert.NoError(t, err)
}
