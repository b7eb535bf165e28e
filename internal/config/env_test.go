package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("BUSJET_API_URL", "")
	t.Setenv("BUSJET_SESSION_FILE", "")

	env := LoadEnv()
	assert.Equal(t, "http://localhost:8080", env.APIBaseURL)
	assert.Empty(t, env.SessionFile)
}

func TestLoadEnvTrimsTrailingSlash(t *testing.T) {
	t.Setenv("BUSJET_API_URL", "https://api.busjet.example/ ")

	env := LoadEnv()
	assert.Equal(t, "https://api.busjet.example", env.APIBaseURL)
}

func TestLoadStubEnvDefaults(t *testing.T) {
	t.Setenv("APP_ADDR", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	env := LoadStubEnv()
	assert.Equal(t, ":8080", env.AppAddr)
	assert.NotEmpty(t, env.JWTSecret)
	assert.Contains(t, env.CORSAllowedOrigins, "http://localhost:3000")
}

func TestLoadStubEnvParsesOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	env := LoadStubEnv()
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, env.CORSAllowedOrigins)
}
