package httpx

import (
	"context"
	"net/http"

	"github.com/ratehub/ratehub-ui/internal/domain/model"
	"github.com/ratehub/ratehub-ui/internal/http/validation"
)

// --- Settings / change password ---

func settingsPageMeta() PageMeta {
	return PageMeta{Title: "Ratehub - Settings", PageTitle: "Settings", CurrentPage: PageSettings}
}

// Settings serves the account settings page with the change-password form.
func (h *UIHandlers) Settings(w http.ResponseWriter, r *http.Request) {
	h.Page(w, r, PageSpec{Meta: settingsPageMeta()})
}

// passwordFormData holds parsed change-password form data. Values are never
// echoed back into the form.
type passwordFormData struct {
	Current string
	New     string
	Confirm string
}

// parsePasswordForm parses and validates the change-password form.
func parsePasswordForm(r *http.Request) (passwordFormData, map[string]string) {
	errs := map[string]string{}
	if err := r.ParseForm(); err != nil {
		errs["_"] = "Invalid form submission."
	}

	current := r.Form.Get("current_password")
	next := r.Form.Get("new_password")
	confirm := r.Form.Get("confirm_password")

	v := validation.New().
		Validate("current_password", current, validation.NotEmpty("Current password")).
		Validate("new_password", next, validation.Password("New password"))
	for k, msg := range v.Errors() {
		errs[k] = msg
	}

	if confirm != next {
		errs["confirm_password"] = "Passwords do not match."
	}

	return passwordFormData{Current: current, New: next, Confirm: confirm}, errs
}

// renderPasswordForm re-renders the settings page with form errors.
func (h *UIHandlers) renderPasswordForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	h.renderAppPage(w, r, data)
}

// PasswordChange updates the caller's own password.
// POST /settings/password.
func (h *UIHandlers) PasswordChange(w http.ResponseWriter, r *http.Request) {
	if h.UserSvc == nil {
		h.NotFound(w, r)
		return
	}

	HandleForm(FormHandlerOpts[passwordFormData]{
		W:      w,
		R:      r,
		Parser: parsePasswordForm,
		Submit: func(ctx context.Context, req passwordFormData) (any, error) {
			return h.UserSvc.ChangePassword(ctx, GetSessionFromContext(ctx), model.ChangePasswordRequest{
				CurrentPassword: req.Current,
				NewPassword:     req.New,
			})
		},
		Renderer: h.renderPasswordForm,
		PageMeta: settingsPageMeta(),
		OnSuccess: func(w http.ResponseWriter, _ *http.Request, _ any) {
			triggerToast(w, "Password changed.", "success")
			HTMX(w).Redirect("/settings")
		},
	})
}
