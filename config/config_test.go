package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"ENV", "PORT", "BASE_URL", "DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER",
		"DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "ASSETS_DIR", "IMAGE_CACHE_DIR",
		"CHROME_PATH", "GOOGLE_APPLICATION_CREDENTIALS", "GOOGLE_APPLICATION_CREDENTIALS_JSON",
		"PALLET_CAPACITY_DEFAULT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, 400, cfg.DefaultPalletCapacity)
	assert.False(t, cfg.HasDriveCredentials())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_PortWithColon(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", ":9000")
	t.Setenv("BASE_URL", "https://ladrillos.example/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "https://ladrillos.example", cfg.BaseURL)
}

func TestLoad_DatabaseFromParts(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "brick")
	t.Setenv("DB_NAME", "catalogo")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "host=db port=5432 user=brick password= dbname=catalogo sslmode=disable", cfg.DatabaseURL)
}

func TestLoad_IncompleteDatabase(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "db")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_PalletCapacity(t *testing.T) {
	clearEnv(t)
	t.Setenv("PALLET_CAPACITY_DEFAULT", "500")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.DefaultPalletCapacity)

	t.Setenv("PALLET_CAPACITY_DEFAULT", "-1")
	_, err = Load()
	assert.Error(t, err)
}
