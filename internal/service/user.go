package service

import (
	"context"

	domainauth "github.com/ratehub/ratehub-ui/internal/domain/auth"
	"github.com/ratehub/ratehub-ui/internal/domain/model"
	apperrors "github.com/ratehub/ratehub-ui/internal/errors"
)

// UserBackend is the subset of the backend client used for account operations.
type UserBackend interface {
	Register(ctx context.Context, req model.RegisterRequest) (model.RegisterResponse, error)
	AddUser(ctx context.Context, token string, req model.AddUserRequest) (model.RegisterResponse, error)
	ChangePassword(ctx context.Context, token string, req model.ChangePasswordRequest) (model.ChangePasswordResponse, error)
	ListUsers(ctx context.Context, token string) ([]model.User, error)
	GetUser(ctx context.Context, token string, id int64) (model.User, error)
}

// UserService exposes account management to handlers.
type UserService struct {
	backend UserBackend
}

// NewUserService constructs a UserService.
func NewUserService(backend UserBackend) *UserService {
	return &UserService{backend: backend}
}

// Register creates a self-service account; no session required.
func (s *UserService) Register(ctx context.Context, req model.RegisterRequest) (model.RegisterResponse, error) {
	return s.backend.Register(ctx, req)
}

// Create adds an account with an explicit role, on behalf of an administrator.
func (s *UserService) Create(ctx context.Context, sess *domainauth.Session, req model.AddUserRequest) (model.RegisterResponse, error) {
	if err := requireToken(sess); err != nil {
		return model.RegisterResponse{}, err
	}
	return s.backend.AddUser(ctx, sess.Token, req)
}

// ChangePassword updates the calling user's own password.
func (s *UserService) ChangePassword(ctx context.Context, sess *domainauth.Session, req model.ChangePasswordRequest) (model.ChangePasswordResponse, error) {
	if err := requireToken(sess); err != nil {
		return model.ChangePasswordResponse{}, err
	}
	return s.backend.ChangePassword(ctx, sess.Token, req)
}

// List returns all accounts visible to the caller.
func (s *UserService) List(ctx context.Context, sess *domainauth.Session) ([]model.User, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	return s.backend.ListUsers(ctx, sess.Token)
}

// Get returns one account by id.
func (s *UserService) Get(ctx context.Context, sess *domainauth.Session, id int64) (model.User, error) {
	if err := requireToken(sess); err != nil {
		return model.User{}, err
	}
	if id <= 0 {
		return model.User{}, apperrors.NotFoundf("user %d not found", id)
	}
	return s.backend.GetUser(ctx, sess.Token, id)
}
