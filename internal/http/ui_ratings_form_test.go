package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	domainauth "github.com/ratehub/ratehub-ui/internal/domain/auth"
	"github.com/ratehub/ratehub-ui/internal/domain/model"
	apperrors "github.com/ratehub/ratehub-ui/internal/errors"
)

// stubRatingsService implements RatingsUIService for handler tests.
type stubRatingsService struct {
	submitFn func(ctx context.Context, sess *domainauth.Session, req model.RatingRequest) (model.RatingResponse, error)
	mineFn   func(ctx context.Context, sess *domainauth.Session, storeID int64) (*model.Rating, error)
}

func (s *stubRatingsService) Submit(
	ctx context.Context,
	sess *domainauth.Session,
	req model.RatingRequest,
) (model.RatingResponse, error) {
	if s.submitFn == nil {
		return model.RatingResponse{}, apperrors.Internal("rating submit")
	}
	return s.submitFn(ctx, sess, req)
}

func (s *stubRatingsService) Mine(ctx context.Context, sess *domainauth.Session, storeID int64) (*model.Rating, error) {
	if s.mineFn == nil {
		return nil, nil
	}
	return s.mineFn(ctx, sess, storeID)
}

func ratingRequest(storeID, value string, sess *domainauth.Session) *http.Request {
	form := url.Values{"store_id": {storeID}, "value": {value}}
	req := postForm("/ratings", form, true)
	if sess != nil {
		req = req.WithContext(SetSessionInContext(req.Context(), sess))
	}
	return req
}

func TestRatingSubmitSuccessRefreshesPage(t *testing.T) {
	var got model.RatingRequest
	ratings := &stubRatingsService{
		submitFn: func(_ context.Context, sess *domainauth.Session, req model.RatingRequest) (model.RatingResponse, error) {
			if sess == nil || !sess.HasToken() {
				t.Fatal("expected an authenticated session with a backend token")
			}
			got = req
			return model.RatingResponse{
				Message: "Rating submitted",
				Rating:  model.Rating{ID: 1, StoreID: req.StoreID, Value: req.Value},
			}, nil
		},
	}
	h := &UIHandlers{RatingSvc: ratings}

	sess := testSession(domainauth.RoleCustomer)
	rec := httptest.NewRecorder()
	h.RatingSubmit(rec, ratingRequest("42", "4", &sess))

	if got.StoreID != 42 || got.Value != 4 {
		t.Errorf("expected rating (42, 4) to reach the service, got (%d, %d)", got.StoreID, got.Value)
	}
	if rec.Header().Get("HX-Refresh") != "true" {
		t.Error("expected HX-Refresh after a successful rating")
	}
	if trigger := rec.Header().Get("HX-Trigger"); !strings.Contains(trigger, "Rating saved.") {
		t.Errorf("expected success toast, got %q", trigger)
	}
}

func TestRatingSubmitRejectsOutOfRangeValues(t *testing.T) {
	for _, value := range []int{0, 6, -1} {
		t.Run(strconv.Itoa(value), func(t *testing.T) {
			ratings := &stubRatingsService{
				submitFn: func(_ context.Context, _ *domainauth.Session, _ model.RatingRequest) (model.RatingResponse, error) {
					t.Fatal("submit should not be called for an invalid value")
					return model.RatingResponse{}, nil
				},
			}
			h := &UIHandlers{RatingSvc: ratings}

			sess := testSession(domainauth.RoleCustomer)
			rec := httptest.NewRecorder()
			h.RatingSubmit(rec, ratingRequest("42", strconv.Itoa(value), &sess))

			if rec.Code != http.StatusUnprocessableEntity {
				t.Errorf("expected 422, got %d", rec.Code)
			}
			if trigger := rec.Header().Get("HX-Trigger"); !strings.Contains(trigger, "between 1 and 5") {
				t.Errorf("expected validation toast, got %q", trigger)
			}
			if rec.Header().Get("HX-Refresh") != "" {
				t.Error("expected no refresh on validation failure")
			}
		})
	}
}

func TestRatingSubmitRejectsNonNumericValue(t *testing.T) {
	ratings := &stubRatingsService{
		submitFn: func(_ context.Context, _ *domainauth.Session, _ model.RatingRequest) (model.RatingResponse, error) {
			t.Fatal("submit should not be called for a non-numeric value")
			return model.RatingResponse{}, nil
		},
	}
	h := &UIHandlers{RatingSvc: ratings}

	sess := testSession(domainauth.RoleCustomer)
	rec := httptest.NewRecorder()
	h.RatingSubmit(rec, ratingRequest("42", "lots", &sess))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}
	if trigger := rec.Header().Get("HX-Trigger"); !strings.Contains(trigger, "Rating must be a number.") {
		t.Errorf("expected validation toast, got %q", trigger)
	}
}

func TestRatingSubmitRequiresSession(t *testing.T) {
	h := &UIHandlers{RatingSvc: &stubRatingsService{}}

	rec := httptest.NewRecorder()
	h.RatingSubmit(rec, ratingRequest("42", "5", nil))

	if got := rec.Header().Get("HX-Redirect"); got != "/auth/login" {
		t.Errorf("expected redirect to login, got %q", got)
	}
	if trigger := rec.Header().Get("HX-Trigger"); !strings.Contains(trigger, "sign in") {
		t.Errorf("expected sign-in toast, got %q", trigger)
	}
}

func TestRatingSubmitUpstreamErrorAsToast(t *testing.T) {
	ratings := &stubRatingsService{
		submitFn: func(_ context.Context, _ *domainauth.Session, _ model.RatingRequest) (model.RatingResponse, error) {
			return model.RatingResponse{}, apperrors.Upstream("Failed to submit rating")
		},
	}
	h := &UIHandlers{RatingSvc: ratings}

	sess := testSession(domainauth.RoleCustomer)
	rec := httptest.NewRecorder()
	h.RatingSubmit(rec, ratingRequest("42", "3", &sess))

	if trigger := rec.Header().Get("HX-Trigger"); !strings.Contains(trigger, "Failed to submit rating") {
		t.Errorf("expected error toast, got %q", trigger)
	}
	if rec.Header().Get("HX-Refresh") != "" {
		t.Error("expected no refresh on upstream failure")
	}
}
