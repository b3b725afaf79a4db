package model

const (
	// RatingMin and RatingMax bound the accepted star values.
	RatingMin = 1
	RatingMax = 5
)

// Rating represents a single user's rating of a store.
// At most one rating exists per (user, store) pair; the backend enforces
// this, the UI only relies on it for rate-vs-update wording.
type Rating struct {
	ID        int64  `json:"id"`
	StoreID   int64  `json:"storeId"`
	UserID    int64  `json:"userId"`
	Value     int    `json:"value"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// ValidRatingValue reports whether v is an accepted star value.
func ValidRatingValue(v int) bool { return v >= RatingMin && v <= RatingMax }

// RatingRequest represents parameters to submit (or re-submit) a rating.
type RatingRequest struct {
	StoreID int64 `json:"storeId"`
	Value   int   `json:"value"`
}

// RatingResponse is the backend's reply to a rating submission.
type RatingResponse struct {
	Message string `json:"message"`
	Rating  Rating `json:"rating"`
}
