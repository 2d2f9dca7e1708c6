package config

import (
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	// Set test environment variables
	os.Setenv("SERVER_PORT", "8080")
	os.Setenv("DB_HOST", "localhost")
	os.Setenv("DB_PORT", "5432")
	os.Setenv("DB_USER", "testuser")
	os.Setenv("DB_PASSWORD", "testpass")
	os.Setenv("DB_NAME", "testdb")
	os.Setenv("REDIS_HOST", "localhost")
	os.Setenv("REDIS_PORT", "6379")
	os.Setenv("JWT_SECRET", "test-secret")

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Assertions
	assert.NotNil(t, cfg)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "testuser", cfg.DBUser)
	assert.Equal(t, "testpass", cfg.DBPassword)
	assert.Equal(t, "testdb", cfg.DBName)
	assert.Equal(t, "localhost", cfg.RedisHost)
	assert.Equal(t, "6379", cfg.RedisPort)
	assert.Equal(t, "test-secret", cfg.JWTSecret)

	// Cleanup
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("DB_HOST")
	os.Unsetenv("DB_PORT")
	os.Unsetenv("DB_USER")
	os.Unsetenv("DB_PASSWORD")
	os.Unsetenv("DB_NAME")
	os.Unsetenv("REDIS_HOST")
	os.Unsetenv("REDIS_PORT")
	os.Unsetenv("JWT_SECRET")
}

func TestLoadConfig_Defaults(t *testing.T) {
	// Clear environment variables
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("PAYOUT_RATE_PER_1000_VIEWS")
	os.Unsetenv("DUPLICATE_WINDOW_MINUTES")

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Assertions - check that defaults are used
	assert.NotNil(t, cfg)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.True(t, cfg.PayoutRatePerThousand.Equal(decimal.NewFromInt(5)))
	assert.True(t, cfg.MinimumPayoutAmount.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, 30, cfg.DuplicateWindowMinutes)
}

func TestLoadConfig_PayoutRate(t *testing.T) {
	os.Setenv("PAYOUT_RATE_PER_1000_VIEWS", "7.25")
	os.Setenv("DUPLICATE_WINDOW_MINUTES", "15")
	defer os.Unsetenv("PAYOUT_RATE_PER_1000_VIEWS")
	defer os.Unsetenv("DUPLICATE_WINDOW_MINUTES")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	expected, _ := decimal.NewFromString("7.25")
	assert.True(t, cfg.PayoutRatePerThousand.Equal(expected))
	assert.Equal(t, 15, cfg.DuplicateWindowMinutes)
}

func TestLoadConfig_InvalidPayoutRate(t *testing.T) {
	os.Setenv("PAYOUT_RATE_PER_1000_VIEWS", "not-a-number")
	defer os.Unsetenv("PAYOUT_RATE_PER_1000_VIEWS")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Falls back to the default rate
	assert.True(t, cfg.PayoutRatePerThousand.Equal(decimal.NewFromInt(5)))
}
