package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ratehub/ratehub-ui/internal/domain/model"
)

// SubmitRating creates or updates the caller's rating for a store. The
// backend treats a repeat submission as an update.
func (c *Client) SubmitRating(ctx context.Context, token string, req model.RatingRequest) (model.RatingResponse, error) {
	var out model.RatingResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/ratings", token, nil, req, &out)
	if err != nil {
		return model.RatingResponse{}, c.upstream(err, "Failed to submit rating. Please try again.")
	}
	return out, nil
}

// MyRating returns the caller's existing rating for a store, or nil when
// none has been submitted yet. A backend 404 is the no-rating case, not an
// error.
func (c *Client) MyRating(ctx context.Context, token string, storeID int64) (*model.Rating, error) {
	var out model.Rating
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/ratings/store/%d/me", storeID), token, nil, nil, &out)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, nil
		}
		return nil, c.upstream(err, "Failed to fetch user rating")
	}
	return &out, nil
}
