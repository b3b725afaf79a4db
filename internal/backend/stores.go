package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ratehub/ratehub-ui/internal/domain/model"
)

// ListStores returns the store catalogue. With a token the backend includes
// the caller's own rating on each store; without one it serves public data.
func (c *Client) ListStores(ctx context.Context, token string) ([]model.Store, error) {
	var out []model.Store
	err := c.doJSON(ctx, http.MethodGet, "/api/stores", token, nil, nil, &out)
	if err != nil {
		return nil, c.upstream(err, "Failed to fetch stores")
	}
	return out, nil
}

// GetStore returns a single store. The timestamp query parameter defeats
// stale intermediary caches after a rating write.
func (c *Client) GetStore(ctx context.Context, token string, id int64) (model.Store, error) {
	query := url.Values{"t": []string{strconv.FormatInt(time.Now().UnixMilli(), 10)}}
	var out model.Store
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/stores/%d", id), token, query, nil, &out)
	if err != nil {
		return model.Store{}, c.upstream(err, "Failed to fetch store details")
	}
	return out, nil
}

// AddStore creates a store, optionally assigned to an owner account.
func (c *Client) AddStore(ctx context.Context, token string, req model.AddStoreRequest) (model.AddStoreResponse, error) {
	var out model.AddStoreResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/stores", token, nil, req, &out)
	if err != nil {
		return model.AddStoreResponse{}, c.upstream(err, "Failed to add store. Please try again.")
	}
	return out, nil
}
