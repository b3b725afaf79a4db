package model

// LoginRequest represents credentials posted to the backend login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the backend's reply to a login. The token is the only
// guaranteed field; user is filled in by some deployments only.
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}
