package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratehub/ratehub-ui/internal/domain/model"
	apperrors "github.com/ratehub/ratehub-ui/internal/errors"
)

// stubUserBackend is a test double for UserBackend.
type stubUserBackend struct {
	registerFunc func(ctx context.Context, req model.RegisterRequest) (model.RegisterResponse, error)
	addFunc      func(ctx context.Context, token string, req model.AddUserRequest) (model.RegisterResponse, error)
	passwordFunc func(ctx context.Context, token string, req model.ChangePasswordRequest) (model.ChangePasswordResponse, error)
	listFunc     func(ctx context.Context, token string) ([]model.User, error)
	getFunc      func(ctx context.Context, token string, id int64) (model.User, error)
}

func (s *stubUserBackend) Register(ctx context.Context, req model.RegisterRequest) (model.RegisterResponse, error) {
	return s.registerFunc(ctx, req)
}

func (s *stubUserBackend) AddUser(ctx context.Context, token string, req model.AddUserRequest) (model.RegisterResponse, error) {
	return s.addFunc(ctx, token, req)
}

func (s *stubUserBackend) ChangePassword(ctx context.Context, token string, req model.ChangePasswordRequest) (model.ChangePasswordResponse, error) {
	return s.passwordFunc(ctx, token, req)
}

func (s *stubUserBackend) ListUsers(ctx context.Context, token string) ([]model.User, error) {
	return s.listFunc(ctx, token)
}

func (s *stubUserBackend) GetUser(ctx context.Context, token string, id int64) (model.User, error) {
	return s.getFunc(ctx, token, id)
}

func TestUserService_Register_NoSessionNeeded(t *testing.T) {
	svc := NewUserService(&stubUserBackend{
		registerFunc: func(_ context.Context, req model.RegisterRequest) (model.RegisterResponse, error) {
			assert.Equal(t, "new@example.com", req.Email)
			return model.RegisterResponse{Message: "Registered"}, nil
		},
	})

	out, err := svc.Register(context.Background(), model.RegisterRequest{Email: "new@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Registered", out.Message)
}

func TestUserService_Create_RequiresToken(t *testing.T) {
	svc := NewUserService(&stubUserBackend{})
	_, err := svc.Create(context.Background(), nil, model.AddUserRequest{})
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestUserService_Create_ForwardsToken(t *testing.T) {
	svc := NewUserService(&stubUserBackend{
		addFunc: func(_ context.Context, token string, req model.AddUserRequest) (model.RegisterResponse, error) {
			assert.Equal(t, "tok", token)
			assert.Equal(t, "STORE_OWNER", req.Role)
			return model.RegisterResponse{Message: "created"}, nil
		},
	})

	_, err := svc.Create(context.Background(), validSession(), model.AddUserRequest{Role: "STORE_OWNER"})
	require.NoError(t, err)
}

func TestUserService_ChangePassword_RequiresToken(t *testing.T) {
	svc := NewUserService(&stubUserBackend{})
	_, err := svc.ChangePassword(context.Background(), nil, model.ChangePasswordRequest{})
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestUserService_List_RequiresToken(t *testing.T) {
	svc := NewUserService(&stubUserBackend{})
	_, err := svc.List(context.Background(), nil)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestUserService_Get_RejectsBadID(t *testing.T) {
	svc := NewUserService(&stubUserBackend{})
	_, err := svc.Get(context.Background(), validSession(), 0)
	assert.True(t, apperrors.IsNotFound(err))
}
