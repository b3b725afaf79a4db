package httpx

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"github.com/ratehub/ratehub-ui/internal/domain/model"
)

const errMsgUnableLoadStores = "Unable to load stores."

// StoreRow is a store prepared for list rendering.
type StoreRow struct {
	ID           int64
	Name         string
	Email        string
	Address      string
	Average      float64
	HasAverage   bool
	RatingsCount int
}

func toStoreRow(s model.Store) StoreRow {
	row := StoreRow{
		ID:      s.ID,
		Name:    s.Name,
		Email:   s.Email,
		Address: s.Address,
	}
	if avg, ok := s.AverageRating(); ok {
		row.Average = avg
		row.HasAverage = true
	}
	if s.RatingsCount != nil {
		row.RatingsCount = *s.RatingsCount
	}
	return row
}

// filterStoreRows applies the free-text search filter against name and address.
func filterStoreRows(rows []StoreRow, query string) []StoreRow {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return rows
	}
	out := make([]StoreRow, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Name), query) ||
			strings.Contains(strings.ToLower(row.Address), query) {
			out = append(out, row)
		}
	}
	return out
}

// Stores serves the store catalogue page. Anonymous visitors see overall
// ratings only; signed-in users can open the rating dialog per store.
func (h *UIHandlers) Stores(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Ratehub - Stores", PageTitle: "Stores", CurrentPage: PageStores},
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Query"] = query
			data["Stores"] = []StoreRow{}

			if h.StoreSvc == nil {
				data["ErrorMessage"] = errMsgUnableLoadStores
				return nil
			}

			stores, err := h.StoreSvc.List(ctx, GetSessionFromContext(ctx))
			if err != nil {
				h.logger().WarnContext(ctx, "failed to load stores", "error", err)
				data["ErrorMessage"] = errMsgUnableLoadStores
				return err
			}

			rows := make([]StoreRow, 0, len(stores))
			for _, s := range stores {
				rows = append(rows, toStoreRow(s))
			}
			sort.Slice(rows, func(i, j int) bool {
				return strings.ToLower(rows[i].Name) < strings.ToLower(rows[j].Name)
			})
			data["Stores"] = filterStoreRows(rows, query)
			return nil
		},
	})
}

// StoreView serves a single store's detail page. For signed-in users the
// caller's own rating is preloaded so the template can switch between
// "Rate this store" and "Update your rating" wording.
func (h *UIHandlers) StoreView(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(r, "id")
	if !ok || h.StoreSvc == nil {
		h.NotFound(w, r)
		return
	}

	sess := GetSessionFromContext(r.Context())
	store, err := h.StoreSvc.Get(r.Context(), sess, int64(id))
	if err != nil {
		h.logger().WarnContext(r.Context(), "failed to load store", "store_id", id, "error", err)
		h.NotFound(w, r)
		return
	}

	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Ratehub - " + store.Name, PageTitle: store.Name, CurrentPage: PageStoreView},
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Store"] = toStoreRow(store)
			data["MyRating"] = 0
			data["HasMyRating"] = false

			if sess == nil || h.RatingSvc == nil {
				return nil
			}

			mine, rateErr := h.RatingSvc.Mine(ctx, sess, store.ID)
			if rateErr != nil {
				// Non-fatal: the page still renders without the preload
				h.logger().WarnContext(ctx, "failed to load own rating", "store_id", store.ID, "error", rateErr)
				return nil
			}
			if mine != nil {
				data["MyRating"] = mine.Value
				data["HasMyRating"] = true
			}
			return nil
		},
	})
}
