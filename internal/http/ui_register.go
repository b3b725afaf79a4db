package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/ratehub/ratehub-ui/internal/domain/model"
	"github.com/ratehub/ratehub-ui/internal/http/validation"
)

// --- Self-registration form ---

// registerFormData holds parsed registration form data.
type registerFormData struct {
	Name     string
	Email    string
	Address  string
	Password string
	// Form state preservation
	FormName    string
	FormEmail   string
	FormAddress string
}

// parseRegisterForm parses and validates the registration form.
func parseRegisterForm(r *http.Request) (registerFormData, map[string]string) {
	errs := map[string]string{}
	if err := r.ParseForm(); err != nil {
		errs["_"] = "Invalid form submission."
	}

	name := strings.TrimSpace(r.Form.Get("name"))
	email := strings.TrimSpace(r.Form.Get("email"))
	address := strings.TrimSpace(r.Form.Get("address"))
	password := r.Form.Get("password")

	v := validation.New().
		Validate("name", name, validation.RequiredRange("Name", 20, 60)).
		Validate("email", email, validation.Email("Email")).
		Validate("address", address, validation.Optional("Address", 400)).
		Validate("password", password, validation.Password("Password"))
	for k, msg := range v.Errors() {
		errs[k] = msg
	}

	return registerFormData{
		Name:        name,
		Email:       email,
		Address:     address,
		Password:    password,
		FormName:    name,
		FormEmail:   email,
		FormAddress: address,
	}, errs
}

func registerPageMeta() PageMeta {
	return PageMeta{Title: "Ratehub - Create Account", PageTitle: "Create Account", CurrentPage: PageRegister}
}

// renderRegisterForm renders the registration page, preserving submitted values.
func (h *UIHandlers) renderRegisterForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	if formData, ok := data["FormData"].(registerFormData); ok {
		data["FormName"] = formData.FormName
		data["FormEmail"] = formData.FormEmail
		data["FormAddress"] = formData.FormAddress
	}
	h.renderAppPage(w, r, data)
}

// RegisterPage renders the create-account page.
// GET /auth/register.
func (h *UIHandlers) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if !IsAnonymous(r.Context()) {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	h.renderAppPage(w, r, basePageData(r, registerPageMeta()))
}

// RegisterSubmit creates a new customer account.
// POST /auth/register.
func (h *UIHandlers) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	if h.UserSvc == nil {
		http.Error(w, "registration unavailable", http.StatusServiceUnavailable)
		return
	}

	HandleForm(FormHandlerOpts[registerFormData]{
		W:      w,
		R:      r,
		Parser: parseRegisterForm,
		Submit: func(ctx context.Context, req registerFormData) (any, error) {
			return h.UserSvc.Register(ctx, model.RegisterRequest{
				Name:     req.Name,
				Email:    req.Email,
				Address:  req.Address,
				Password: req.Password,
				Role:     "CUSTOMER",
			})
		},
		Renderer: h.renderRegisterForm,
		PageMeta: registerPageMeta(),
		OnSuccess: func(w http.ResponseWriter, r *http.Request, _ any) {
			triggerToast(w, "Account created. Please sign in.", "success")
			if IsHTMX(r) {
				HTMX(w).Redirect("/auth/login")
				return
			}
			http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
		},
	})
}
