package config

import "time"

// BackendConfig contains ratings backend API configuration.
// All fields use the BACKEND_ prefix.
type BackendConfig struct {
	// BaseURL is the root of the ratings backend REST API.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:5000"`

	// Timeout bounds each backend round trip.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`

	// ExposeErrorDetail forwards upstream error messages to users instead
	// of the fixed per-operation ones. Useful while debugging a backend
	// integration; keep off in production.
	ExposeErrorDetail bool `env:"EXPOSE_ERROR_DETAIL" envDefault:"false"`
}

// Sanitize applies guardrails to backend configuration values.
func (b *BackendConfig) Sanitize() {
	if b.Timeout <= 0 {
		b.Timeout = 10 * time.Second
	}
}
