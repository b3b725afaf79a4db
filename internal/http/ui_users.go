package httpx

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"github.com/ratehub/ratehub-ui/internal/domain/model"
)

const errMsgUnableLoadUsers = "Unable to load users."

// UserRow is a user prepared for list rendering.
type UserRow struct {
	ID          int64
	Name        string
	Email       string
	Address     string
	Role        string
	StoreRating float64
	HasRating   bool
}

func toUserRow(u model.User) UserRow {
	row := UserRow{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Address: u.Address,
		Role:    u.Role,
	}
	if u.Rating != nil {
		row.StoreRating = *u.Rating
		row.HasRating = true
	}
	return row
}

// filterUserRows applies the free-text search filter against name, email and role.
func filterUserRows(rows []UserRow, query string) []UserRow {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return rows
	}
	out := make([]UserRow, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Name), query) ||
			strings.Contains(strings.ToLower(row.Email), query) ||
			strings.Contains(strings.ToLower(row.Role), query) {
			out = append(out, row)
		}
	}
	return out
}

// Users serves the admin user directory.
func (h *UIHandlers) Users(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Ratehub - Users", PageTitle: "Users", CurrentPage: PageUsers},
		Fetch: func(ctx context.Context, data map[string]any) error {
			data["Query"] = query
			data["Users"] = []UserRow{}

			if h.UserSvc == nil {
				data["ErrorMessage"] = errMsgUnableLoadUsers
				return nil
			}

			users, err := h.UserSvc.List(ctx, GetSessionFromContext(ctx))
			if err != nil {
				h.logger().WarnContext(ctx, "failed to load users", "error", err)
				data["ErrorMessage"] = errMsgUnableLoadUsers
				return err
			}

			rows := make([]UserRow, 0, len(users))
			for _, u := range users {
				rows = append(rows, toUserRow(u))
			}
			sort.Slice(rows, func(i, j int) bool {
				return strings.ToLower(rows[i].Name) < strings.ToLower(rows[j].Name)
			})
			data["Users"] = filterUserRows(rows, query)
			return nil
		},
	})
}

// UserView serves a single user's detail page. Store owners additionally
// show their store's average rating.
func (h *UIHandlers) UserView(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(r, "id")
	if !ok || h.UserSvc == nil {
		h.NotFound(w, r)
		return
	}

	user, err := h.UserSvc.Get(r.Context(), GetSessionFromContext(r.Context()), int64(id))
	if err != nil {
		h.logger().WarnContext(r.Context(), "failed to load user", "user_id", id, "error", err)
		h.NotFound(w, r)
		return
	}

	h.Page(w, r, PageSpec{
		Meta: PageMeta{Title: "Ratehub - " + user.Name, PageTitle: user.Name, CurrentPage: PageUserView},
		Fetch: func(_ context.Context, data map[string]any) error {
			data["Account"] = toUserRow(user)
			return nil
		},
	})
}
