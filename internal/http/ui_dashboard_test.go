package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	domainauth "github.com/ratehub/ratehub-ui/internal/domain/auth"
	"github.com/ratehub/ratehub-ui/internal/domain/model"
	apperrors "github.com/ratehub/ratehub-ui/internal/errors"
	"github.com/ratehub/ratehub-ui/internal/testutil"
)

func TestIndexRedirectsAnonymousToStores(t *testing.T) {
	h := &UIHandlers{}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.Index(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/stores" {
		t.Errorf("expected redirect to /stores, got %q", got)
	}
}

func TestFetchDashboardStoreStats(t *testing.T) {
	h := &UIHandlers{
		StoreSvc: &stubStoresService{
			listFn: func(_ context.Context, _ *domainauth.Session) ([]model.Store, error) {
				return []model.Store{
					{ID: 1, Name: "Alpha", OverallRating: testutil.Float64Ptr(4.5)},
					{ID: 2, Name: "Beta", OverallRating: testutil.Float64Ptr(3.0)},
					{ID: 3, Name: "Gamma"}, // unrated, excluded from top list
				}, nil
			},
		},
	}

	sess := testSession(domainauth.RoleCustomer)
	ctx := SetSessionInContext(context.Background(), &sess)
	data := map[string]any{}

	if err := h.fetchDashboard(ctx, data); err != nil {
		t.Fatalf("fetchDashboard: %v", err)
	}

	if data["StoreCount"] != 3 {
		t.Errorf("StoreCount = %v, want 3", data["StoreCount"])
	}
	top, ok := data["TopStores"].([]StoreRow)
	if !ok {
		t.Fatalf("TopStores has unexpected type %T", data["TopStores"])
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 rated stores, got %d", len(top))
	}
	if top[0].Name != "Alpha" {
		t.Errorf("expected highest rated store first, got %q", top[0].Name)
	}
}

func TestFetchDashboardOwnedStores(t *testing.T) {
	h := &UIHandlers{
		StoreSvc: &stubStoresService{
			listFn: func(_ context.Context, _ *domainauth.Session) ([]model.Store, error) {
				return []model.Store{
					{ID: 1, Name: "Mine", OwnerID: testutil.Int64Ptr(7)},
					{ID: 2, Name: "Someone else's", OwnerID: testutil.Int64Ptr(8)},
					{ID: 3, Name: "Unowned"},
				}, nil
			},
		},
	}

	sess := testSession(domainauth.RoleStoreOwner) // UserID "7"
	ctx := SetSessionInContext(context.Background(), &sess)
	data := map[string]any{}

	if err := h.fetchDashboard(ctx, data); err != nil {
		t.Fatalf("fetchDashboard: %v", err)
	}

	owned, ok := data["OwnedStores"].([]StoreRow)
	if !ok {
		t.Fatalf("OwnedStores has unexpected type %T", data["OwnedStores"])
	}
	if len(owned) != 1 || owned[0].Name != "Mine" {
		t.Errorf("expected only the caller's store, got %+v", owned)
	}
}

func TestFetchDashboardUserStatsAdminOnly(t *testing.T) {
	listCalls := 0
	users := &stubUsersService{
		listFn: func(_ context.Context, _ *domainauth.Session) ([]model.User, error) {
			listCalls++
			return []model.User{{ID: 1}, {ID: 2}}, nil
		},
	}
	h := &UIHandlers{StoreSvc: &stubStoresService{}, UserSvc: users}

	// Customers never trigger the user list
	sess := testSession(domainauth.RoleCustomer)
	ctx := SetSessionInContext(context.Background(), &sess)
	if err := h.fetchDashboard(ctx, map[string]any{}); err != nil {
		t.Fatalf("fetchDashboard: %v", err)
	}
	if listCalls != 0 {
		t.Errorf("expected no user list calls for a customer, got %d", listCalls)
	}

	// Admins do
	adminSess := testSession(domainauth.RoleAdmin)
	adminCtx := SetSessionInContext(context.Background(), &adminSess)
	data := map[string]any{}
	if err := h.fetchDashboard(adminCtx, data); err != nil {
		t.Fatalf("fetchDashboard: %v", err)
	}
	if listCalls != 1 {
		t.Errorf("expected one user list call for an admin, got %d", listCalls)
	}
	if data["UserCount"] != 2 {
		t.Errorf("UserCount = %v, want 2", data["UserCount"])
	}
}

func TestFetchDashboardPartialFailure(t *testing.T) {
	h := &UIHandlers{
		StoreSvc: &stubStoresService{
			listFn: func(_ context.Context, _ *domainauth.Session) ([]model.Store, error) {
				return nil, apperrors.Upstream("backend down")
			},
		},
		UserSvc: &stubUsersService{
			listFn: func(_ context.Context, _ *domainauth.Session) ([]model.User, error) {
				return []model.User{{ID: 1}}, nil
			},
		},
	}

	sess := testSession(domainauth.RoleAdmin)
	ctx := SetSessionInContext(context.Background(), &sess)
	data := map[string]any{}

	if err := h.fetchDashboard(ctx, data); err != nil {
		t.Fatalf("fetchDashboard: %v", err)
	}

	if data["StoreStatsError"] == "" {
		t.Error("expected store stats error to be surfaced")
	}
	if data["UserCount"] != 1 {
		t.Errorf("user stats should survive a store failure, got UserCount = %v", data["UserCount"])
	}
}
