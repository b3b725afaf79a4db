package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/ratehub/ratehub-ui/internal/http/validation"
	"github.com/ratehub/ratehub-ui/internal/service"
)

// --- Login form ---

// loginFormData holds parsed login form data.
type loginFormData struct {
	Email    string
	Password string
	Redirect string
	// Form state preservation
	FormEmail string
}

// parseLoginForm parses and validates the login form.
func parseLoginForm(r *http.Request) (loginFormData, map[string]string) {
	errs := map[string]string{}
	if err := r.ParseForm(); err != nil {
		errs["_"] = "Invalid form submission."
	}

	email := strings.TrimSpace(r.Form.Get("email"))
	password := r.Form.Get("password")

	v := validation.New().
		Validate("email", email, validation.Email("Email")).
		Validate("password", password, validation.NotEmpty("Password"))
	for k, msg := range v.Errors() {
		errs[k] = msg
	}

	return loginFormData{
		Email:     email,
		Password:  password,
		Redirect:  safeRedirectPath(r.Form.Get("redirect_uri")),
		FormEmail: email,
	}, errs
}

func loginPageMeta() PageMeta {
	return PageMeta{Title: "Ratehub - Sign In", PageTitle: "Sign In", CurrentPage: PageLogin}
}

// renderLoginForm renders the login page, preserving submitted values.
func (h *UIHandlers) renderLoginForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	if formData, ok := data["FormData"].(loginFormData); ok {
		data["FormEmail"] = formData.FormEmail
		data["RedirectURI"] = formData.Redirect
	}
	if _, ok := data["RedirectURI"]; !ok {
		data["RedirectURI"] = safeRedirectPath(r.URL.Query().Get("redirect_uri"))
	}
	h.renderAppPage(w, r, data)
}

// LoginPage renders the sign-in page.
// GET /auth/login.
func (h *UIHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	// Already signed in: go straight to the app
	if !IsAnonymous(r.Context()) {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	data := basePageData(r, loginPageMeta())
	data["RedirectURI"] = safeRedirectPath(r.URL.Query().Get("redirect_uri"))
	h.renderAppPage(w, r, data)
}

// LoginSubmit verifies credentials and issues the session cookie.
// POST /auth/login.
func (h *UIHandlers) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if h.Auth == nil {
		http.Error(w, "authentication unavailable", http.StatusServiceUnavailable)
		return
	}

	HandleForm(FormHandlerOpts[loginFormData]{
		W:      w,
		R:      r,
		Parser: parseLoginForm,
		Submit: func(ctx context.Context, req loginFormData) (any, error) {
			return h.Auth.Login(ctx, req.Email, req.Password)
		},
		Renderer: h.renderLoginForm,
		PageMeta: loginPageMeta(),
		OnSuccess: func(w http.ResponseWriter, r *http.Request, result any) {
			res, ok := result.(*service.LoginResult)
			if !ok || res == nil {
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			writeSessionCookie(w, r, h.CookieDomain, res.Session)

			dest := safeRedirectPath(r.FormValue("redirect_uri"))
			if IsHTMX(r) {
				HTMX(w).Redirect(dest)
				return
			}
			http.Redirect(w, r, dest, http.StatusSeeOther)
		},
	})
}
