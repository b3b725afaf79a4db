package httpx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/ratehub/ratehub-ui/internal/domain/auth"
)

func TestGetUserSessionFromContext(t *testing.T) {
	// No session
	if s, ok := GetUserSessionFromContext(context.Background()); assert.False(t, ok) {
		assert.Nil(t, s)
	}

	// With session
	sess := &domainauth.Session{ID: "abc", Role: domainauth.RoleCustomer}
	ctx := SetSessionInContext(context.Background(), sess)
	s, ok := GetUserSessionFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, sess, s)
}

func TestIsAnonymous(t *testing.T) {
	// No session => anonymous
	assert.True(t, IsAnonymous(context.Background()))

	// Any session => not anonymous
	user := &domainauth.Session{ID: "u", Role: domainauth.RoleCustomer}
	admin := &domainauth.Session{ID: "a", Role: domainauth.RoleAdmin}
	assert.False(t, IsAnonymous(SetSessionInContext(context.Background(), user)))
	assert.False(t, IsAnonymous(SetSessionInContext(context.Background(), admin)))
}
