package config

import "time"

// AuthConfig groups session-related configuration.
//
// Authentication itself is delegated to the ratings backend; this service
// only decides how long to keep the resulting session around.
type AuthConfig struct {
	// SessionTTL bounds session lifetime when the backend token carries no
	// expiry of its own.
	SessionTTL time.Duration `env:"AUTH_SESSION_TTL" envDefault:"8h"`

	// SessionPrefix is the Redis key prefix for session records.
	SessionPrefix string `env:"AUTH_SESSION_PREFIX" envDefault:"session:"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL <= 0 {
		a.SessionTTL = 8 * time.Hour
	}
	if a.SessionPrefix == "" {
		a.SessionPrefix = "session:"
	}
}
