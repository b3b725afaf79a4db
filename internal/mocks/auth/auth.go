// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.
package auth

import (
	"context"
	"errors"
	"time"

	domainauth "github.com/ratehub/ratehub-ui/internal/domain/auth"
	"github.com/ratehub/ratehub-ui/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.CredentialsProvider = (*StubCredentialsProvider)(nil)
	_ ports.SessionStore        = (*MemorySessionStore)(nil)
)

// StubCredentialsProvider simulates the backend login for tests.
type StubCredentialsProvider struct {
	LoginFunc func(ctx context.Context, email, password string) (domainauth.Identity, error)

	// DefaultIdentity is returned when LoginFunc is nil.
	DefaultIdentity domainauth.Identity
}

// NewStubCredentialsProvider creates a StubCredentialsProvider with sensible defaults.
func NewStubCredentialsProvider() *StubCredentialsProvider {
	return &StubCredentialsProvider{
		DefaultIdentity: domainauth.Identity{
			UserID:    "1",
			Email:     "stub.user@example.com",
			Role:      domainauth.RoleCustomer,
			Token:     "stub-token",
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}
}

func (s *StubCredentialsProvider) Login(ctx context.Context, email, password string) (domainauth.Identity, error) {
	if s.LoginFunc != nil {
		return s.LoginFunc(ctx, email, password)
	}

	identity := s.DefaultIdentity
	if identity.Email == "" {
		identity.Email = email
	}
	if identity.ExpiresAt.IsZero() {
		identity.ExpiresAt = time.Now().Add(time.Hour)
	}
	return identity, nil
}

// MemorySessionStore is an in-memory session store for unit tests.
type MemorySessionStore struct {
	sessions map[string]domainauth.Session
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domainauth.Session),
	}
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ErrNotFound
	}
	sess, ok := m.sessions[id]
	if !ok {
		return domainauth.Session{}, ErrNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}
	delete(m.sessions, id)
	return nil
}

// ErrNotFound is returned by mocks when an entity is not present.
type notFoundError struct{}

func (notFoundError) Error() string { return "not found" }

var ErrNotFound error = notFoundError{}
