package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorsConfig(t *testing.T) {
	opts := CorsConfig("http://localhost:5173")

	assert.Equal(t, []string{"http://localhost:5173"}, opts.AllowedOrigins)
	assert.True(t, opts.AllowCredentials, "session cookie requires credentialed CORS")
	assert.Contains(t, opts.AllowedMethods, "PUT")
}

func TestGetEnv(t *testing.T) {
	t.Setenv("MURMUR_TEST_KEY", "set")

	assert.Equal(t, "set", getEnv("MURMUR_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", getEnv("MURMUR_TEST_MISSING", "fallback"))
}
