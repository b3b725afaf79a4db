package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/ratehub/ratehub-ui/internal/domain/auth"
)

// CredentialsProvider authenticates an email/password pair against the
// ratings backend and returns the resolved identity, including the bearer
// token used for subsequent backend calls.
type CredentialsProvider interface {
	Login(ctx context.Context, email, password string) (domainauth.Identity, error)
}

// SessionStore persists and retrieves user sessions.
//
// Sessions are written exactly once, on successful login, and deleted on
// logout or when a read finds them expired. Every other access is a read.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}
