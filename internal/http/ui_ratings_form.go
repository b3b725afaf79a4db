package httpx

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/ratehub/ratehub-ui/internal/domain/model"
	"github.com/ratehub/ratehub-ui/internal/http/validation"
)

// --- Rating form ---

// ratingFormData holds parsed rating form data.
type ratingFormData struct {
	StoreID int64
	Value   int
}

// parseRatingForm parses and validates the rating form.
func parseRatingForm(r *http.Request) (ratingFormData, map[string]string) {
	errs := map[string]string{}
	if err := r.ParseForm(); err != nil {
		errs["_"] = "Invalid form submission."
	}

	storeTxt := strings.TrimSpace(r.Form.Get("store_id"))
	valueTxt := strings.TrimSpace(r.Form.Get("value"))

	v := validation.New().
		Validate("value", valueTxt, validation.IntRange("Rating", model.RatingMin, model.RatingMax))
	for k, msg := range v.Errors() {
		errs[k] = msg
	}

	var storeID int64
	if n, err := strconv.ParseInt(storeTxt, 10, 64); err == nil && n >= 1 {
		storeID = n
	} else {
		errs["store_id"] = "Store is required."
	}

	value, _ := strconv.Atoi(valueTxt)

	return ratingFormData{StoreID: storeID, Value: value}, errs
}

// RatingSubmit creates or updates the caller's rating for a store.
// POST /ratings. On success the page fully reloads so every widget that
// shows the average picks up the new value.
func (h *UIHandlers) RatingSubmit(w http.ResponseWriter, r *http.Request) {
	if h.RatingSvc == nil {
		h.NotFound(w, r)
		return
	}

	sess := GetSessionFromContext(r.Context())
	if sess == nil || !sess.HasToken() {
		triggerToast(w, "Please sign in to rate stores.", "error")
		HTMX(w).Redirect("/auth/login")
		return
	}

	HandleForm(FormHandlerOpts[ratingFormData]{
		W:      w,
		R:      r,
		Parser: parseRatingForm,
		Submit: func(ctx context.Context, req ratingFormData) (any, error) {
			return h.RatingSvc.Submit(ctx, sess, model.RatingRequest{
				StoreID: req.StoreID,
				Value:   req.Value,
			})
		},
		Renderer: h.renderRatingError,
		OnSuccess: func(w http.ResponseWriter, _ *http.Request, _ any) {
			triggerToast(w, "Rating saved.", "success")
			HTMX(w).Refresh()
		},
	})
}

// renderRatingError reports rating failures as a toast; the dialog markup
// lives on the store page and is not re-rendered server side.
func (h *UIHandlers) renderRatingError(w http.ResponseWriter, _ *http.Request, data map[string]any) {
	msg := "Failed to submit rating. Please try again."
	if errsMap, ok := data["Errors"].(map[string]string); ok {
		for _, m := range errsMap {
			msg = m
			break
		}
	} else if m, ok := data["ErrorMessage"].(string); ok && m != "" {
		msg = m
	}
	triggerToast(w, msg, "error")
	w.WriteHeader(http.StatusUnprocessableEntity)
}
