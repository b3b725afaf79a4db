package service

import (
	"context"

	domainauth "github.com/ratehub/ratehub-ui/internal/domain/auth"
	"github.com/ratehub/ratehub-ui/internal/domain/model"
	apperrors "github.com/ratehub/ratehub-ui/internal/errors"
)

// RatingBackend is the subset of the backend client used for ratings.
type RatingBackend interface {
	SubmitRating(ctx context.Context, token string, req model.RatingRequest) (model.RatingResponse, error)
	MyRating(ctx context.Context, token string, storeID int64) (*model.Rating, error)
}

// RatingService exposes rating submission and lookup to handlers.
type RatingService struct {
	backend RatingBackend
}

// NewRatingService constructs a RatingService.
func NewRatingService(backend RatingBackend) *RatingService {
	return &RatingService{backend: backend}
}

// Submit creates or updates the caller's rating for a store. The backend
// enforces the value range too, but rejecting it here avoids a round trip
// and gives a field-level message.
func (s *RatingService) Submit(ctx context.Context, sess *domainauth.Session, req model.RatingRequest) (model.RatingResponse, error) {
	if err := requireToken(sess); err != nil {
		return model.RatingResponse{}, err
	}
	if req.StoreID <= 0 {
		return model.RatingResponse{}, apperrors.ValidationField("storeId", "Store is required")
	}
	if !model.ValidRatingValue(req.Value) {
		return model.RatingResponse{}, apperrors.ValidationField("value", "Rating must be between 1 and 5")
	}
	return s.backend.SubmitRating(ctx, sess.Token, req)
}

// Mine returns the caller's rating for a store, or nil when none exists.
func (s *RatingService) Mine(ctx context.Context, sess *domainauth.Session, storeID int64) (*model.Rating, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	if storeID <= 0 {
		return nil, apperrors.ValidationField("storeId", "Store is required")
	}
	return s.backend.MyRating(ctx, sess.Token, storeID)
}
