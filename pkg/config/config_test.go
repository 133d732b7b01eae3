package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	// Set test environment variables
	os.Setenv("SERVER_PORT", "8080")
	os.Setenv("DB_HOST", "db")
	os.Setenv("DB_PORT", "5433")
	os.Setenv("DB_USER", "testuser")
	os.Setenv("DB_PASSWORD", "testpass")
	os.Setenv("DB_NAME", "testdb")
	os.Setenv("REDIS_HOST", "cache")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("ACTIVITY_TIMESTAMPS", "exact")
	os.Setenv("MEDIA_STORAGE", "s3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.NotNil(t, cfg)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "db", cfg.DBHost)
	assert.Equal(t, "5433", cfg.DBPort)
	assert.Equal(t, "testuser", cfg.DBUser)
	assert.Equal(t, "testpass", cfg.DBPassword)
	assert.Equal(t, "testdb", cfg.DBName)
	assert.Equal(t, "cache", cfg.RedisHost)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "exact", cfg.ActivityTimestamps)
	assert.Equal(t, "s3", cfg.MediaStorage)

	// Cleanup
	for _, key := range []string{"SERVER_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"REDIS_HOST", "REDIS_DB", "JWT_SECRET", "ACTIVITY_TIMESTAMPS", "MEDIA_STORAGE"} {
		os.Unsetenv(key)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("ACTIVITY_TIMESTAMPS")
	os.Unsetenv("MEDIA_STORAGE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
	assert.Equal(t, "approximate", cfg.ActivityTimestamps)
	assert.Equal(t, "local", cfg.MediaStorage)
}

func TestLoadConfig_BadIntFallsBack(t *testing.T) {
	os.Setenv("REDIS_DB", "two")
	defer os.Unsetenv("REDIS_DB")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 0, cfg.RedisDB)
}

func TestConfig_Addresses(t *testing.T) {
	cfg := &Config{
		DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "n", DBSSLMode: "disable",
		RedisHost: "cache", RedisPort: "6380",
	}

	assert.Equal(t, "host=db user=u password=p dbname=n port=5432 sslmode=disable", cfg.PostgresDSN())
	assert.Equal(t, "cache:6380", cfg.RedisAddr())
}
