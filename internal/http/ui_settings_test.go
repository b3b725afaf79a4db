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

func TestPasswordChangeSuccess(t *testing.T) {
	var got model.ChangePasswordRequest
	users := &stubUsersService{
		changePasswordFn: func(_ context.Context, sess *domainauth.Session, req model.ChangePasswordRequest) (model.ChangePasswordResponse, error) {
			if sess == nil {
				t.Fatal("expected session to be passed to the service")
			}
			got = req
			return model.ChangePasswordResponse{Message: "Password updated successfully"}, nil
		},
	}
	h := &UIHandlers{UserSvc: users}

	form := url.Values{
		"current_password": {"OldSecret#1"},
		"new_password":     {"NewSecret#2"},
		"confirm_password": {"NewSecret#2"},
	}
	req := postForm("/settings/password", form, true)
	sess := testSession(domainauth.RoleCustomer)
	req = req.WithContext(SetSessionInContext(req.Context(), &sess))
	rec := httptest.NewRecorder()

	h.PasswordChange(rec, req)

	if got.CurrentPassword != "OldSecret#1" || got.NewPassword != "NewSecret#2" {
		t.Errorf("unexpected request passed to service: %+v", got)
	}
	if rec.Header().Get("HX-Redirect") != "/settings" {
		t.Errorf("expected redirect to /settings, got %q", rec.Header().Get("HX-Redirect"))
	}
	if trigger := rec.Header().Get("HX-Trigger"); !strings.Contains(trigger, "Password changed.") {
		t.Errorf("expected success toast, got %q", trigger)
	}
}

func TestPasswordChangeMismatch(t *testing.T) {
	h := CreateUIHandlersForTest(t)
	if h == nil {
		return
	}
	h.UserSvc = &stubUsersService{
		changePasswordFn: func(_ context.Context, _ *domainauth.Session, _ model.ChangePasswordRequest) (model.ChangePasswordResponse, error) {
			t.Fatal("change password should not be called when confirmation mismatches")
			return model.ChangePasswordResponse{}, nil
		},
	}

	form := url.Values{
		"current_password": {"OldSecret#1"},
		"new_password":     {"NewSecret#2"},
		"confirm_password": {"Different#3"},
	}
	rec := httptest.NewRecorder()
	h.PasswordChange(rec, postForm("/settings/password", form, false))

	if body := rec.Body.String(); !strings.Contains(body, "Passwords do not match.") {
		t.Error("expected mismatch message in response body")
	}
}

func TestPasswordChangeWrongCurrentPassword(t *testing.T) {
	h := CreateUIHandlersForTest(t)
	if h == nil {
		return
	}
	h.UserSvc = &stubUsersService{
		changePasswordFn: func(_ context.Context, _ *domainauth.Session, _ model.ChangePasswordRequest) (model.ChangePasswordResponse, error) {
			return model.ChangePasswordResponse{}, apperrors.Unauthorized("Current password is incorrect")
		},
	}

	form := url.Values{
		"current_password": {"WrongOld#1"},
		"new_password":     {"NewSecret#2"},
		"confirm_password": {"NewSecret#2"},
	}
	rec := httptest.NewRecorder()
	h.PasswordChange(rec, postForm("/settings/password", form, false))

	if body := rec.Body.String(); !strings.Contains(body, "Current password is incorrect") {
		t.Error("expected incorrect password message in response body")
	}
}
