package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/ratehub/ratehub-ui/internal/domain/auth"
)

func TestStubCredentialsProvider_Defaults(t *testing.T) {
	provider := NewStubCredentialsProvider()

	identity, err := provider.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "1", identity.UserID)
	assert.Equal(t, domainauth.RoleCustomer, identity.Role)
	assert.NotEmpty(t, identity.Token)
}

func TestStubCredentialsProvider_CustomFunc(t *testing.T) {
	provider := &StubCredentialsProvider{
		LoginFunc: func(_ context.Context, email, _ string) (domainauth.Identity, error) {
			return domainauth.Identity{UserID: "9", Email: email, Role: domainauth.RoleAdmin}, nil
		},
	}

	identity, err := provider.Login(context.Background(), "admin@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "9", identity.UserID)
	assert.Equal(t, "admin@example.com", identity.Email)
}

func TestMemorySessionStore_RoundTrip(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	sess := domainauth.Session{
		ID:        "s1",
		UserID:    "1",
		Role:      domainauth.RoleCustomer,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.Equal(t, ErrNotFound, err)
}

func TestMemorySessionStore_EmptyID(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, domainauth.Session{}))
	_, err := store.Get(ctx, "")
	assert.Equal(t, ErrNotFound, err)
	assert.NoError(t, store.Delete(ctx, ""))
}
