// Package model holds the wire types exchanged with the ratings backend.
package model

// Store represents a rateable store as returned by the ratings backend.
type Store struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	// OverallRating and RatingsCount come from newer backend responses;
	// Rating is the older single-field form kept for compatibility.
	OverallRating *float64 `json:"overallRating,omitempty"`
	RatingsCount  *int     `json:"ratingsCount,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	OwnerID       *int64   `json:"ownerId,omitempty"`
	CreatedAt     string   `json:"createdAt,omitempty"`
}

// AverageRating returns the best available average for display: the newer
// overallRating field when present, otherwise the legacy rating field.
func (s Store) AverageRating() (float64, bool) {
	if s.OverallRating != nil {
		return *s.OverallRating, true
	}
	if s.Rating != nil {
		return *s.Rating, true
	}
	return 0, false
}

// AddStoreRequest represents parameters to create a Store.
// OwnerID is optional; admins may assign the store to a specific owner.
type AddStoreRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	OwnerID *int64 `json:"ownerId,omitempty"`
}

// AddStoreResponse is the backend's reply to a store creation.
type AddStoreResponse struct {
	Message string `json:"message"`
	Store   Store  `json:"store"`
}
