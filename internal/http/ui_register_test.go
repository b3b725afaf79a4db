package httpx

import (
	"context"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	domainauth "github.com/ratehub/ratehub-ui/internal/domain/auth"
	"github.com/ratehub/ratehub-ui/internal/domain/model"
	apperrors "github.com/ratehub/ratehub-ui/internal/errors"
)

// stubUsersService implements UsersUIService for handler tests.
type stubUsersService struct {
	registerFn       func(ctx context.Context, req model.RegisterRequest) (model.RegisterResponse, error)
	createFn         func(ctx context.Context, sess *domainauth.Session, req model.AddUserRequest) (model.RegisterResponse, error)
	changePasswordFn func(ctx context.Context, sess *domainauth.Session, req model.ChangePasswordRequest) (model.ChangePasswordResponse, error)
	listFn           func(ctx context.Context, sess *domainauth.Session) ([]model.User, error)
	getFn            func(ctx context.Context, sess *domainauth.Session, id int64) (model.User, error)
}

func (s *stubUsersService) Register(ctx context.Context, req model.RegisterRequest) (model.RegisterResponse, error) {
	if s.registerFn == nil {
		return model.RegisterResponse{}, apperrors.Internal("register")
	}
	return s.registerFn(ctx, req)
}

func (s *stubUsersService) Create(
	ctx context.Context,
	sess *domainauth.Session,
	req model.AddUserRequest,
) (model.RegisterResponse, error) {
	if s.createFn == nil {
		return model.RegisterResponse{}, apperrors.Internal("user create")
	}
	return s.createFn(ctx, sess, req)
}

func (s *stubUsersService) ChangePassword(
	ctx context.Context,
	sess *domainauth.Session,
	req model.ChangePasswordRequest,
) (model.ChangePasswordResponse, error) {
	if s.changePasswordFn == nil {
		return model.ChangePasswordResponse{}, apperrors.Internal("change password")
	}
	return s.changePasswordFn(ctx, sess, req)
}

func (s *stubUsersService) List(ctx context.Context, sess *domainauth.Session) ([]model.User, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, sess)
}

func (s *stubUsersService) Get(ctx context.Context, sess *domainauth.Session, id int64) (model.User, error) {
	if s.getFn == nil {
		return model.User{}, apperrors.NotFound("user")
	}
	return s.getFn(ctx, sess, id)
}

func validRegisterForm() url.Values {
	return url.Values{
		"name":     {"Jonathan Customer Example"},
		"email":    {"jonathan@example.com"},
		"address":  {"456 Elm Street"},
		"password": {"Secret#123"},
	}
}

func TestRegisterSubmitCreatesCustomer(t *testing.T) {
	var got model.RegisterRequest
	users := &stubUsersService{
		registerFn: func(_ context.Context, req model.RegisterRequest) (model.RegisterResponse, error) {
			got = req
			return model.RegisterResponse{Message: "User registered successfully"}, nil
		},
	}
	h := &UIHandlers{UserSvc: users}

	rec := httptest.NewRecorder()
	h.RegisterSubmit(rec, postForm("/auth/register", validRegisterForm(), true))

	if got.Role != "CUSTOMER" {
		t.Errorf("self-registration must always create a customer, got role %q", got.Role)
	}
	if got.Email != "jonathan@example.com" {
		t.Errorf("unexpected email: %q", got.Email)
	}
	if rec.Header().Get("HX-Redirect") != "/auth/login" {
		t.Errorf("expected redirect to login, got %q", rec.Header().Get("HX-Redirect"))
	}
	if trigger := rec.Header().Get("HX-Trigger"); !strings.Contains(trigger, "Account created") {
		t.Errorf("expected account created toast, got %q", trigger)
	}
}

func TestRegisterSubmitPasswordValidation(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantMsg  string
	}{
		{"too short", "Ab#1", "must be between 8 and 16 characters."},
		{"too long", "Abcdefghijklmno#1", "must be between 8 and 16 characters."},
		{"no uppercase", "secret#123", "must contain at least one uppercase letter."},
		{"no special", "Secret123", "must contain at least one special character."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := CreateUIHandlersForTest(t)
			if h == nil {
				return
			}
			h.UserSvc = &stubUsersService{
				registerFn: func(_ context.Context, _ model.RegisterRequest) (model.RegisterResponse, error) {
					t.Fatal("register should not be called with an invalid password")
					return model.RegisterResponse{}, nil
				},
			}

			form := validRegisterForm()
			form.Set("password", tt.password)
			rec := httptest.NewRecorder()
			h.RegisterSubmit(rec, postForm("/auth/register", form, false))

			if body := rec.Body.String(); !strings.Contains(body, tt.wantMsg) {
				t.Errorf("expected %q in response body", tt.wantMsg)
			}
		})
	}
}

func TestRegisterSubmitDuplicateEmail(t *testing.T) {
	h := CreateUIHandlersForTest(t)
	if h == nil {
		return
	}
	h.UserSvc = &stubUsersService{
		registerFn: func(_ context.Context, _ model.RegisterRequest) (model.RegisterResponse, error) {
			return model.RegisterResponse{}, apperrors.Conflict("An account with this email already exists")
		},
	}

	rec := httptest.NewRecorder()
	h.RegisterSubmit(rec, postForm("/auth/register", validRegisterForm(), false))

	if body := rec.Body.String(); !strings.Contains(body, "An account with this email already exists") {
		t.Error("expected conflict message in response body")
	}
}
