package config

import (
	"os"
	"strings"
)

// Env carries the client-side settings. Everything comes from environment
// variables so the CLI needs no config file besides the session file.
type Env struct {
	// APIBaseURL is the base URL of the BusJet backend, without a
	// trailing slash.
	APIBaseURL string

	// SessionFile overrides the well-known session file path when set.
	SessionFile string
}

// LoadEnv reads the client environment with defaults.
func LoadEnv() Env {
	base := strings.TrimSpace(os.Getenv("BUSJET_API_URL"))
	if base == "" {
		base = "http://localhost:8080"
	}
	base = strings.TrimRight(base, "/")

	return Env{
		APIBaseURL:  base,
		SessionFile: strings.TrimSpace(os.Getenv("BUSJET_SESSION_FILE")),
	}
}

// StubEnv carries the settings of the development API stub.
type StubEnv struct {
	AppAddr            string
	GinMode            string
	JWTSecret          string
	CORSAllowedOrigins []string
}

// LoadStubEnv reads the stub environment with defaults. The default JWT
// secret is fine for a throwaway in-memory stub; it is not a production
// credential.
func LoadStubEnv() StubEnv {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "busjet-stub-secret"
	}

	var origins []string
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:5173",
		}
	}

	return StubEnv{
		AppAddr:            appAddr,
		GinMode:            strings.TrimSpace(os.Getenv("GIN_MODE")),
		JWTSecret:          secret,
		CORSAllowedOrigins: origins,
	}
}
