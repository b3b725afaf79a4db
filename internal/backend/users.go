package backend

import (
	"context"
	"fmt"
	"net/http"

	domainauth "github.com/ratehub/ratehub-ui/internal/domain/auth"
	"github.com/ratehub/ratehub-ui/internal/domain/model"
	apperrors "github.com/ratehub/ratehub-ui/internal/errors"
)

// Login exchanges credentials for a backend token. Any rejection maps to the
// same message so callers cannot distinguish unknown accounts from bad
// passwords.
func (c *Client) Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error) {
	var out model.LoginResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", "", nil, req, &out)
	if err != nil {
		return model.LoginResponse{}, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "Invalid email or password")
	}
	return out, nil
}

// Register creates a self-service account. No token is sent; the backend
// assigns the default role.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (model.RegisterResponse, error) {
	var out model.RegisterResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", "", nil, req, &out)
	if err != nil {
		return model.RegisterResponse{}, c.upstream(err, "Registration failed. Please try again.")
	}
	return out, nil
}

// AddUser creates an account on behalf of an administrator. The same
// registration endpoint is used, with the admin's token attached so the
// backend honours the requested role.
func (c *Client) AddUser(ctx context.Context, token string, req model.AddUserRequest) (model.RegisterResponse, error) {
	var out model.RegisterResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", token, nil, req, &out)
	if err != nil {
		return model.RegisterResponse{}, c.upstream(err, "Failed to add user. Please try again.")
	}
	return out, nil
}

// ChangePassword updates the calling user's own password.
func (c *Client) ChangePassword(ctx context.Context, token string, req model.ChangePasswordRequest) (model.ChangePasswordResponse, error) {
	var out model.ChangePasswordResponse
	err := c.doJSON(ctx, http.MethodPut, "/api/users/me/password", token, nil, req, &out)
	if err != nil {
		return model.ChangePasswordResponse{}, c.upstream(err, "Failed to change password. Please check your current password.")
	}
	return out, nil
}

// ListUsers returns every account visible to the caller.
func (c *Client) ListUsers(ctx context.Context, token string) ([]model.User, error) {
	var out []model.User
	err := c.doJSON(ctx, http.MethodGet, "/api/users", token, nil, nil, &out)
	if err != nil {
		return nil, c.upstream(err, "Failed to fetch users")
	}
	return out, nil
}

// GetUser returns a single account by id.
func (c *Client) GetUser(ctx context.Context, token string, id int64) (model.User, error) {
	var out model.User
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/users/%d", id), token, nil, nil, &out)
	if err != nil {
		return model.User{}, c.upstream(err, "Failed to fetch user details")
	}
	return out, nil
}

// ListStoreOwners returns the accounts eligible to own a store. The backend
// has no dedicated endpoint, so the full user list is filtered here.
func (c *Client) ListStoreOwners(ctx context.Context, token string) ([]model.User, error) {
	var users []model.User
	err := c.doJSON(ctx, http.MethodGet, "/api/users", token, nil, nil, &users)
	if err != nil {
		return nil, c.upstream(err, "Failed to fetch store owners")
	}

	owners := make([]model.User, 0, len(users))
	for _, u := range users {
		switch domainauth.ParseRole(u.Role) {
		case domainauth.RoleStoreOwner, domainauth.RoleOwner, domainauth.RoleAdmin:
			owners = append(owners, u)
		}
	}
	return owners, nil
}
