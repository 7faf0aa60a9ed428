package configs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	os.Unsetenv("FOODHUB_TEST_KEY")
	assert.Equal(t, "fallback", getEnv("FOODHUB_TEST_KEY", "fallback"))

	t.Setenv("FOODHUB_TEST_KEY", "set")
	assert.Equal(t, "set", getEnv("FOODHUB_TEST_KEY", "fallback"))
}

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_SOURCE", "host=localhost dbname=foodhub")
	t.Setenv("PORT", "9001")
	t.Setenv("JWT_SECRET", "sssh")

	cfg := LoadConfig()
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "host=localhost dbname=foodhub", cfg.DBSource)
	assert.Equal(t, "9001", cfg.Port)
	assert.Equal(t, "sssh", cfg.JWTSecret)
	assert.Positive(t, cfg.JWTTTL)
}
