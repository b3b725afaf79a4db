package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	domainauth "github.com/ratehub/ratehub-ui/internal/domain/auth"
	"github.com/ratehub/ratehub-ui/internal/domain/model"
	apperrors "github.com/ratehub/ratehub-ui/internal/errors"
)

// stubStoresService implements StoresUIService for handler tests.
type stubStoresService struct {
	listFn   func(ctx context.Context, sess *domainauth.Session) ([]model.Store, error)
	getFn    func(ctx context.Context, sess *domainauth.Session, id int64) (model.Store, error)
	createFn func(ctx context.Context, sess *domainauth.Session, req model.AddStoreRequest) (model.AddStoreResponse, error)
	ownersFn func(ctx context.Context, sess *domainauth.Session) ([]model.User, error)
}

func (s *stubStoresService) List(ctx context.Context, sess *domainauth.Session) ([]model.Store, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, sess)
}

func (s *stubStoresService) Get(ctx context.Context, sess *domainauth.Session, id int64) (model.Store, error) {
	if s.getFn == nil {
		return model.Store{}, apperrors.NotFound("store")
	}
	return s.getFn(ctx, sess, id)
}

func (s *stubStoresService) Create(
	ctx context.Context,
	sess *domainauth.Session,
	req model.AddStoreRequest,
) (model.AddStoreResponse, error) {
	if s.createFn == nil {
		return model.AddStoreResponse{}, apperrors.Internal("store create")
	}
	return s.createFn(ctx, sess, req)
}

func (s *stubStoresService) Owners(ctx context.Context, sess *domainauth.Session) ([]model.User, error) {
	if s.ownersFn == nil {
		return nil, nil
	}
	return s.ownersFn(ctx, sess)
}

const validStoreName = "Fresh Harvest Grocery Downtown"

func validStoreForm() url.Values {
	return url.Values{
		"name":    {validStoreName},
		"email":   {"contact@freshharvest.example.com"},
		"address": {"123 Main Street, Springfield"},
	}
}

func TestStoreCreateSuccessRedirectsToDetail(t *testing.T) {
	stores := &stubStoresService{
		createFn: func(_ context.Context, _ *domainauth.Session, req model.AddStoreRequest) (model.AddStoreResponse, error) {
			if req.Name != validStoreName {
				t.Errorf("unexpected store name: %q", req.Name)
			}
			if req.OwnerID != nil {
				t.Errorf("expected no owner, got %d", *req.OwnerID)
			}
			return model.AddStoreResponse{
				Message: "Store added successfully",
				Store:   model.Store{ID: 42, Name: req.Name, Email: req.Email, Address: req.Address},
			}, nil
		},
	}
	h := &UIHandlers{StoreSvc: stores}

	req := postForm("/stores", validStoreForm(), true)
	sess := testSession(domainauth.RoleAdmin)
	req = req.WithContext(SetSessionInContext(req.Context(), &sess))
	rec := httptest.NewRecorder()

	h.StoreCreate(rec, req)

	if got := rec.Header().Get("HX-Redirect"); got != "/stores/42" {
		t.Errorf("expected HX-Redirect to /stores/42, got %q", got)
	}
	trigger := rec.Header().Get("HX-Trigger")
	if !strings.Contains(trigger, "showToast") {
		t.Errorf("expected showToast trigger, got %q", trigger)
	}
	if !strings.Contains(trigger, validStoreName) {
		t.Errorf("expected toast to mention the store name, got %q", trigger)
	}
}

func TestStoreCreatePassesOwnerID(t *testing.T) {
	var gotOwner *int64
	stores := &stubStoresService{
		createFn: func(_ context.Context, _ *domainauth.Session, req model.AddStoreRequest) (model.AddStoreResponse, error) {
			gotOwner = req.OwnerID
			return model.AddStoreResponse{Store: model.Store{ID: 7, Name: req.Name}}, nil
		},
	}
	h := &UIHandlers{StoreSvc: stores}

	form := validStoreForm()
	form.Set("owner_id", "12")
	req := postForm("/stores", form, true)
	rec := httptest.NewRecorder()

	h.StoreCreate(rec, req)

	if gotOwner == nil || *gotOwner != 12 {
		t.Fatalf("expected owner id 12 to reach the service, got %v", gotOwner)
	}
}

func TestStoreCreateStoreOwnerAssignedToSelf(t *testing.T) {
	var gotOwner *int64
	stores := &stubStoresService{
		createFn: func(_ context.Context, _ *domainauth.Session, req model.AddStoreRequest) (model.AddStoreResponse, error) {
			gotOwner = req.OwnerID
			return model.AddStoreResponse{Store: model.Store{ID: 9, Name: req.Name}}, nil
		},
	}
	h := &UIHandlers{StoreSvc: stores}

	form := validStoreForm()
	form.Set("owner_id", "55")
	req := postForm("/stores", form, true)
	sess := testSession(domainauth.RoleStoreOwner)
	req = req.WithContext(SetSessionInContext(req.Context(), &sess))
	rec := httptest.NewRecorder()

	h.StoreCreate(rec, req)

	if gotOwner == nil || *gotOwner != 7 {
		t.Fatalf("expected the session user id 7 as owner, got %v", gotOwner)
	}
	if got := rec.Header().Get("HX-Redirect"); got != "/stores/9" {
		t.Errorf("expected HX-Redirect to /stores/9, got %q", got)
	}
}

func TestStoreCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(url.Values)
		wantMsg string
	}{
		{
			name:    "short name",
			mutate:  func(f url.Values) { f.Set("name", "Tiny Shop") },
			wantMsg: "Name must be between 20 and 60 characters.",
		},
		{
			name:    "missing address",
			mutate:  func(f url.Values) { f.Set("address", "") },
			wantMsg: "Address is required.",
		},
		{
			name:    "bad email",
			mutate:  func(f url.Values) { f.Set("email", "not-an-email") },
			wantMsg: "Enter a valid email address.",
		},
		{
			name:    "non numeric owner",
			mutate:  func(f url.Values) { f.Set("owner_id", "abc") },
			wantMsg: "Owner must be a number.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := CreateUIHandlersForTest(t)
			if h == nil {
				return
			}
			h.StoreSvc = &stubStoresService{
				createFn: func(_ context.Context, _ *domainauth.Session, _ model.AddStoreRequest) (model.AddStoreResponse, error) {
					t.Fatal("create should not be called with invalid input")
					return model.AddStoreResponse{}, nil
				},
			}

			form := validStoreForm()
			tt.mutate(form)
			req := postForm("/stores", form, false)
			rec := httptest.NewRecorder()

			h.StoreCreate(rec, req)

			if body := rec.Body.String(); !strings.Contains(body, tt.wantMsg) {
				t.Errorf("expected %q in response body", tt.wantMsg)
			}
		})
	}
}

func TestStoreCreateConflictMessage(t *testing.T) {
	h := CreateUIHandlersForTest(t)
	if h == nil {
		return
	}
	h.StoreSvc = &stubStoresService{
		createFn: func(_ context.Context, _ *domainauth.Session, _ model.AddStoreRequest) (model.AddStoreResponse, error) {
			return model.AddStoreResponse{}, apperrors.Conflict("A store with this email already exists")
		},
	}

	req := postForm("/stores", validStoreForm(), false)
	rec := httptest.NewRecorder()

	h.StoreCreate(rec, req)

	if body := rec.Body.String(); !strings.Contains(body, "A store with this email already exists") {
		t.Error("expected conflict message in response body")
	}
}

func TestStoreNewRendersOwnerOptions(t *testing.T) {
	h := CreateUIHandlersForTest(t)
	if h == nil {
		return
	}
	h.StoreSvc = &stubStoresService{
		ownersFn: func(_ context.Context, _ *domainauth.Session) ([]model.User, error) {
			return []model.User{
				{ID: 3, Name: "Zelda Storeowner Example Person", Email: "zelda@example.com"},
				{ID: 1, Name: "Arthur Storeowner Example Person", Email: "arthur@example.com"},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/stores/new", nil)
	sess := testSession(domainauth.RoleAdmin)
	req = req.WithContext(SetSessionInContext(req.Context(), &sess))
	rec := httptest.NewRecorder()

	h.StoreNew(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "arthur@example.com") || !strings.Contains(body, "zelda@example.com") {
		t.Errorf("expected owner options in body, got: %.300s", body)
	}
}

func TestStoreNewHidesOwnerPickerForStoreOwner(t *testing.T) {
	h := CreateUIHandlersForTest(t)
	if h == nil {
		return
	}
	h.StoreSvc = &stubStoresService{
		ownersFn: func(_ context.Context, _ *domainauth.Session) ([]model.User, error) {
			t.Fatal("owner listing should not be fetched for store owners")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/stores/new", nil)
	sess := testSession(domainauth.RoleStoreOwner)
	req = req.WithContext(SetSessionInContext(req.Context(), &sess))
	rec := httptest.NewRecorder()

	h.StoreNew(rec, req)

	body := rec.Body.String()
	if strings.Contains(body, `name="owner_id"`) {
		t.Error("expected no owner picker for store owners")
	}
	if !strings.Contains(body, "assigned to your account") {
		t.Errorf("expected self-assignment hint, got: %.300s", body)
	}
}
