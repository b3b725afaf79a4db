package httpx

import (
	"context"
	"net/http"
	"strings"

	domainauth "github.com/ratehub/ratehub-ui/internal/domain/auth"
	"github.com/ratehub/ratehub-ui/internal/domain/model"
	"github.com/ratehub/ratehub-ui/internal/http/validation"
)

// --- User form (admin create) ---

// assignableRoles are the roles an administrator may grant when creating
// an account. The legacy OWNER alias is accepted on read but never offered.
//
//nolint:gochecknoglobals // static read-only option list
var assignableRoles = []string{
	string(domainauth.RoleAdmin),
	string(domainauth.RoleStoreOwner),
	string(domainauth.RoleCustomer),
}

func userFormMeta() PageMeta {
	return PageMeta{Title: "Ratehub - Add User", PageTitle: "Add User", CurrentPage: PageUserForm}
}

// buildRoleOptions returns [{Value, Label, Selected}] for the role select.
func buildRoleOptions(selected string) []map[string]any {
	out := make([]map[string]any, 0, len(assignableRoles))
	for _, role := range assignableRoles {
		out = append(out, map[string]any{
			"Value":    role,
			"Label":    role,
			"Selected": role == selected,
		})
	}
	return out
}

// renderUserForm renders the user create form with common framing data.
func (h *UIHandlers) renderUserForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, _ = prepareFormFrame(FormFrameOpts{
		R:           r,
		Data:        data,
		DefaultMode: FormModeCreate,
		MetaForMode: func(FormMode) PageMeta { return userFormMeta() },
	})

	if formData, ok := data["FormData"].(userFormData); ok {
		data["FormName"] = formData.FormName
		data["FormEmail"] = formData.FormEmail
		data["FormAddress"] = formData.FormAddress
		data["FormRole"] = formData.FormRole
	}

	data["RoleOptions"] = buildRoleOptions(toString(data["FormRole"]))

	h.renderAppPage(w, r, data)
}

// userFormData holds parsed user form data.
type userFormData struct {
	Name     string
	Email    string
	Address  string
	Password string
	Role     string
	// Form state preservation
	FormName    string
	FormEmail   string
	FormAddress string
	FormRole    string
}

// parseUserForm parses and validates the add-user form.
func parseUserForm(r *http.Request) (userFormData, map[string]string) {
	errs := map[string]string{}
	if err := r.ParseForm(); err != nil {
		errs["_"] = "Invalid form submission."
	}

	name := strings.TrimSpace(r.Form.Get("name"))
	email := strings.TrimSpace(r.Form.Get("email"))
	address := strings.TrimSpace(r.Form.Get("address"))
	password := r.Form.Get("password")
	role := strings.ToUpper(strings.TrimSpace(r.Form.Get("role")))

	v := validation.New().
		Validate("name", name, validation.RequiredRange("Name", 20, 60)).
		Validate("email", email, validation.Email("Email")).
		Validate("address", address, validation.Optional("Address", 400)).
		Validate("password", password, validation.Password("Password")).
		Validate("role", role, validation.OneOf("Role", assignableRoles))
	for k, msg := range v.Errors() {
		errs[k] = msg
	}

	return userFormData{
		Name:        name,
		Email:       email,
		Address:     address,
		Password:    password,
		Role:        role,
		FormName:    name,
		FormEmail:   email,
		FormAddress: address,
		FormRole:    role,
	}, errs
}

// UserNew renders the create form.
func (h *UIHandlers) UserNew(w http.ResponseWriter, r *http.Request) {
	h.renderUserForm(w, r, map[string]any{
		"Mode":     "create",
		"FormRole": string(domainauth.RoleCustomer),
	})
}

// UserCreate handles POST to create a user with an explicit role.
func (h *UIHandlers) UserCreate(w http.ResponseWriter, r *http.Request) {
	if h.UserSvc == nil {
		h.NotFound(w, r)
		return
	}

	HandleForm(FormHandlerOpts[userFormData]{
		W:      w,
		R:      r,
		Parser: parseUserForm,
		Submit: func(ctx context.Context, req userFormData) (any, error) {
			return h.UserSvc.Create(ctx, GetSessionFromContext(ctx), model.AddUserRequest{
				Name:     req.Name,
				Email:    req.Email,
				Address:  req.Address,
				Password: req.Password,
				Role:     req.Role,
			})
		},
		Renderer: h.renderUserForm,
		PageMeta: userFormMeta(),
		OnSuccess: func(w http.ResponseWriter, _ *http.Request, _ any) {
			triggerToast(w, "User added.", "success")
			HTMX(w).Redirect("/users")
		},
	})
}
