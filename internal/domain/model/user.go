package model

// User represents a ratings-backend user as returned by its JSON API.
// The backend owns this data; this layer only maps the wire shape.
type User struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address,omitempty"`
	Role    string `json:"role"`
	// CreatedAt is an RFC 3339 timestamp string; kept opaque because some
	// backend deployments omit it or vary its precision.
	CreatedAt string `json:"createdAt,omitempty"`
	// Rating is the average rating of the user's store, present only for
	// store owners in list responses.
	Rating *float64 `json:"rating,omitempty"`
}

// RegisterRequest represents the payload for public self-registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Address  string `json:"address,omitempty"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// AddUserRequest represents parameters for an admin creating a user.
type AddUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Address  string `json:"address,omitempty"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// RegisterResponse is the backend's reply to register/add-user calls.
type RegisterResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user,omitempty"`
}

// ChangePasswordRequest represents the payload for changing the caller's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePasswordResponse is the backend's reply to a password change.
type ChangePasswordResponse struct {
	Message string `json:"message"`
}
