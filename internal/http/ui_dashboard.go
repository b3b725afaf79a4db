package httpx

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strconv"

	"golang.org/x/sync/errgroup"

	domainauth "github.com/ratehub/ratehub-ui/internal/domain/auth"
	"github.com/ratehub/ratehub-ui/internal/domain/model"
)

const errMsgUnableLoadDashboard = "Unable to load dashboard data."

var errServiceUnavailable = errors.New("service unavailable")

// Index serves the home page. Signed-in users land on the dashboard;
// anonymous visitors are sent to the store catalogue.
func (h *UIHandlers) Index(w http.ResponseWriter, r *http.Request) {
	if IsAnonymous(r.Context()) {
		http.Redirect(w, r, "/stores", http.StatusFound)
		return
	}

	h.Page(w, r, PageSpec{
		Meta:  PageMeta{Title: "Ratehub - Dashboard", PageTitle: "Dashboard", CurrentPage: PageHome},
		Fetch: h.fetchDashboard,
	})
}

// fetchDashboard loads the store and user summaries concurrently. Each
// panel fails independently; a broken backend list never blanks the
// whole page.
func (h *UIHandlers) fetchDashboard(ctx context.Context, data map[string]any) error {
	sess := GetSessionFromContext(ctx)
	isAdmin := sess != nil && sess.IsAdmin()

	var (
		stores    []model.Store
		storesErr = errServiceUnavailable
		users     []model.User
		usersErr  = errServiceUnavailable
	)

	g, gctx := errgroup.WithContext(ctx)
	if h.StoreSvc != nil {
		g.Go(func() error {
			stores, storesErr = h.StoreSvc.List(gctx, sess)
			return nil
		})
	}
	if isAdmin && h.UserSvc != nil {
		g.Go(func() error {
			users, usersErr = h.UserSvc.List(gctx, sess)
			return nil
		})
	}
	// Panel errors are recorded per fetch; Wait only synchronizes.
	_ = g.Wait()

	if storesErr != nil {
		h.logger().WarnContext(ctx, "failed to load stores for dashboard", "error", storesErr)
	}

	h.populateStoreStats(data, stores, storesErr)
	h.populateOwnedStores(data, sess, stores, storesErr)
	if isAdmin {
		if usersErr != nil {
			h.logger().WarnContext(ctx, "failed to load users for dashboard", "error", usersErr)
		}
		h.populateUserStats(data, users, usersErr)
	}
	return nil
}

// populateStoreStats summarizes the catalogue: total stores and the top
// rated ones.
func (h *UIHandlers) populateStoreStats(data map[string]any, stores []model.Store, err error) {
	data["StoreCount"] = 0
	data["TopStores"] = []StoreRow{}
	data["StoreStatsError"] = ""

	if err != nil {
		data["StoreStatsError"] = errMsgUnableLoadDashboard
		return
	}

	rows := make([]StoreRow, 0, len(stores))
	for _, s := range stores {
		rows = append(rows, toStoreRow(s))
	}
	data["StoreCount"] = len(rows)

	rated := make([]StoreRow, 0, len(rows))
	for _, row := range rows {
		if row.HasAverage {
			rated = append(rated, row)
		}
	}
	sort.Slice(rated, func(i, j int) bool { return rated[i].Average > rated[j].Average })
	if len(rated) > 5 {
		rated = rated[:5]
	}
	data["TopStores"] = rated
}

// populateOwnedStores surfaces the caller's own stores for store owners.
func (h *UIHandlers) populateOwnedStores(
	data map[string]any,
	sess *domainauth.Session,
	stores []model.Store,
	err error,
) {
	data["OwnedStores"] = []StoreRow{}

	if sess == nil || err != nil {
		return
	}
	switch sess.Role {
	case domainauth.RoleStoreOwner, domainauth.RoleOwner, domainauth.RoleAdmin:
	default:
		return
	}

	owned := make([]StoreRow, 0, 1)
	for _, s := range stores {
		if s.OwnerID != nil && strconv.FormatInt(*s.OwnerID, 10) == sess.UserID {
			owned = append(owned, toStoreRow(s))
		}
	}
	data["OwnedStores"] = owned
}

// populateUserStats adds the account totals shown to administrators.
func (h *UIHandlers) populateUserStats(data map[string]any, users []model.User, err error) {
	data["UserCount"] = 0
	data["UserStatsError"] = ""

	if err != nil {
		data["UserStatsError"] = errMsgUnableLoadDashboard
		return
	}
	data["UserCount"] = len(users)
}

// Dashboard serves the dashboard under its named route.
func (h *UIHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.Index(w, r)
}
