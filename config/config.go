package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"sanchez-brick/models"
)

// Config holds the runtime configuration read from environment variables
type Config struct {
	Env     string // ENV: development | production
	Port    string // PORT, without leading colon
	BaseURL string // BASE_URL, used by headless Chrome to reach the render pages

	// DatabaseURL is empty when the built-in catalogue should be used
	DatabaseURL string

	AssetsDir     string // ASSETS_DIR, local product images
	ImageCacheDir string // IMAGE_CACHE_DIR, resized images
	ChromePath    string // CHROME_PATH, optional

	// Google Drive credentials for drive:<fileId> product images (both optional)
	GoogleCredentialsPath string
	GoogleCredentialsJSON string

	DefaultPalletCapacity int
}

// IsProduction reports whether ENV is production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// HasDriveCredentials reports whether Drive images can be fetched
func (c *Config) HasDriveCredentials() bool {
	return c.GoogleCredentialsPath != "" || c.GoogleCredentialsJSON != ""
}

// Load reads the configuration from the environment.
// The .env file, if any, must already be loaded by the caller.
func Load() (*Config, error) {
	cfg := &Config{
		Env:                   getEnv("ENV", "development"),
		Port:                  strings.TrimPrefix(getEnv("PORT", "8080"), ":"),
		AssetsDir:             getEnv("ASSETS_DIR", "static"),
		ImageCacheDir:         getEnv("IMAGE_CACHE_DIR", "cache/images"),
		ChromePath:            os.Getenv("CHROME_PATH"),
		GoogleCredentialsPath: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		GoogleCredentialsJSON: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON"),
		DefaultPalletCapacity: models.DefaultPalletCapacity,
	}

	cfg.BaseURL = strings.TrimSuffix(getEnv("BASE_URL", "http://localhost:"+cfg.Port), "/")

	if raw := os.Getenv("PALLET_CAPACITY_DEFAULT"); raw != "" {
		capacity, err := strconv.Atoi(raw)
		if err != nil || capacity <= 0 {
			return nil, fmt.Errorf("PALLET_CAPACITY_DEFAULT must be a positive integer, got %q", raw)
		}
		cfg.DefaultPalletCapacity = capacity
	}

	databaseURL, err := databaseURLFromEnv()
	if err != nil {
		return nil, err
	}
	cfg.DatabaseURL = databaseURL

	return cfg, nil
}

// databaseURLFromEnv builds the connection string from DATABASE_URL or the DB_* variables.
// Returns "" when no database is configured.
func databaseURLFromEnv() (string, error) {
	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		return connStr, nil
	}

	host := os.Getenv("DB_HOST")
	user := os.Getenv("DB_USER")
	dbname := os.Getenv("DB_NAME")
	if host == "" && user == "" && dbname == "" {
		return "", nil
	}
	if host == "" || user == "" || dbname == "" {
		return "", fmt.Errorf("database connection variables incomplete. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
	}

	port := getEnv("DB_PORT", "5432")
	sslmode := getEnv("DB_SSLMODE", "disable")
	password := os.Getenv("DB_PASSWORD")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode), nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
