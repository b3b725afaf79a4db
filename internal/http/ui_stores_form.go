package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/ratehub/ratehub-ui/internal/domain/model"
	"github.com/ratehub/ratehub-ui/internal/http/validation"
)

// --- Store form (admin and store-owner create) ---

// buildOwnerOptions returns [{ID, Name, Selected}] for the owner select.
func (h *UIHandlers) buildOwnerOptions(ctx context.Context, selectedID string) ([]map[string]any, error) {
	var out []map[string]any
	if h.StoreSvc == nil {
		return out, errors.New("stores service unavailable")
	}
	owners, err := h.StoreSvc.Owners(ctx, GetSessionFromContext(ctx))
	if err != nil {
		return out, err
	}
	sort.Slice(owners, func(i, j int) bool {
		return strings.ToLower(owners[i].Name) < strings.ToLower(owners[j].Name)
	})
	for _, o := range owners {
		id := strconv.FormatInt(o.ID, 10)
		out = append(out, map[string]any{
			"ID":       id,
			"Name":     o.Name,
			"Email":    o.Email,
			"Selected": id == selectedID,
		})
	}
	return out, nil
}

func storeFormMeta() PageMeta {
	return PageMeta{Title: "Ratehub - Add Store", PageTitle: "Add Store", CurrentPage: PageStoreForm}
}

// renderStoreForm renders the store create form with common framing data.
func (h *UIHandlers) renderStoreForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	data, _ = prepareFormFrame(FormFrameOpts{
		R:           r,
		Data:        data,
		DefaultMode: FormModeCreate,
		MetaForMode: func(FormMode) PageMeta { return storeFormMeta() },
	})

	if formData, ok := data["FormData"].(storeFormData); ok {
		data["FormName"] = formData.FormName
		data["FormEmail"] = formData.FormEmail
		data["FormAddress"] = formData.FormAddress
		data["FormOwnerID"] = formData.FormOwnerID
	}

	// Only admins pick an owner; store owners always create for themselves.
	data["CanAssignOwner"] = false
	if sess := GetSessionFromContext(r.Context()); sess != nil && sess.IsAdmin() {
		data["CanAssignOwner"] = true
		opts, err := h.buildOwnerOptions(r.Context(), toString(data["FormOwnerID"]))
		data["OwnerOptions"] = opts
		if err != nil {
			data["Error"], data["ErrorMessage"] = true, "Failed to load store owners."
		}
	}

	h.renderAppPage(w, r, data)
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// storeFormData holds parsed store form data.
type storeFormData struct {
	Name    string
	Email   string
	Address string
	OwnerID *int64
	// Form state preservation
	FormName    string
	FormEmail   string
	FormAddress string
	FormOwnerID string
}

// parseStoreForm parses and validates the store form.
func parseStoreForm(r *http.Request) (storeFormData, map[string]string) {
	errs := map[string]string{}
	if err := r.ParseForm(); err != nil {
		errs["_"] = "Invalid form submission."
	}

	name := strings.TrimSpace(r.Form.Get("name"))
	email := strings.TrimSpace(r.Form.Get("email"))
	address := strings.TrimSpace(r.Form.Get("address"))
	ownerTxt := strings.TrimSpace(r.Form.Get("owner_id"))

	v := validation.New().
		Validate("name", name, validation.RequiredRange("Name", 20, 60)).
		Validate("email", email, validation.Email("Email")).
		Validate("address", address, validation.Required("Address", 400)).
		Validate("owner_id", ownerTxt, validation.OptionalIntMin("Owner", 1))
	for k, msg := range v.Errors() {
		errs[k] = msg
	}

	var ownerID *int64
	if ownerTxt != "" {
		if n, err := strconv.ParseInt(ownerTxt, 10, 64); err == nil && n >= 1 {
			ownerID = &n
		}
	}

	return storeFormData{
		Name:        name,
		Email:       email,
		Address:     address,
		OwnerID:     ownerID,
		FormName:    name,
		FormEmail:   email,
		FormAddress: address,
		FormOwnerID: ownerTxt,
	}, errs
}

// StoreNew renders the create form.
func (h *UIHandlers) StoreNew(w http.ResponseWriter, r *http.Request) {
	h.renderStoreForm(w, r, map[string]any{"Mode": "create"})
}

// StoreCreate handles POST to create a store.
func (h *UIHandlers) StoreCreate(w http.ResponseWriter, r *http.Request) {
	if h.StoreSvc == nil {
		h.NotFound(w, r)
		return
	}

	HandleForm(FormHandlerOpts[storeFormData]{
		W:      w,
		R:      r,
		Parser: parseStoreForm,
		Submit: func(ctx context.Context, req storeFormData) (any, error) {
			sess := GetSessionFromContext(ctx)
			ownerID := req.OwnerID
			// Non-admin creators own what they create, whatever the form said.
			if sess != nil && !sess.IsAdmin() {
				if uid, err := strconv.ParseInt(sess.UserID, 10, 64); err == nil {
					ownerID = &uid
				}
			}
			return h.StoreSvc.Create(ctx, sess, model.AddStoreRequest{
				Name:    req.Name,
				Email:   req.Email,
				Address: req.Address,
				OwnerID: ownerID,
			})
		},
		Renderer: h.renderStoreForm,
		PageMeta: storeFormMeta(),
		OnSuccess: func(w http.ResponseWriter, r *http.Request, result any) {
			res, ok := result.(model.AddStoreResponse)
			if !ok {
				HTMX(w).Redirect("/stores")
				return
			}
			triggerToast(w, fmt.Sprintf("Store %q added.", res.Store.Name), "success")
			HTMX(w).Redirect(fmt.Sprintf("/stores/%d", res.Store.ID))
		},
	})
}
