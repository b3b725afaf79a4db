package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import (
	"strings"
	"time"
)

// Role represents an application's authorization role as issued by the
// ratings backend. Keep string form for easy persistence and cookies.
// Valid values are defined as constants below; anything else maps to
// RoleUnknown via ParseRole rather than passing through silently.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleStoreOwner Role = "STORE_OWNER"
	// RoleOwner is a legacy alias some backend deployments still issue.
	// It is treated everywhere as equivalent to RoleStoreOwner.
	RoleOwner    Role = "OWNER"
	RoleCustomer Role = "CUSTOMER"
	// RoleUnknown is the explicit variant for any role value outside the
	// closed set. Unknown roles see only the common navigation items.
	RoleUnknown Role = "UNKNOWN"
)

// ParseRole maps a raw role string onto the closed role set.
// Matching is case-insensitive; unrecognized values become RoleUnknown.
func ParseRole(raw string) Role {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(RoleAdmin):
		return RoleAdmin
	case string(RoleStoreOwner):
		return RoleStoreOwner
	case string(RoleOwner):
		return RoleOwner
	case string(RoleCustomer):
		return RoleCustomer
	default:
		return RoleUnknown
	}
}

// Valid reports whether the role is one of the recognized backend roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStoreOwner, RoleOwner, RoleCustomer:
		return true
	default:
		return false
	}
}

// IsStoreOwner reports whether the role grants store-management access,
// accepting both the canonical and the legacy spelling.
func (r Role) IsStoreOwner() bool { return r == RoleStoreOwner || r == RoleOwner }

// Identity represents the authenticated principal returned by the ratings
// backend on login. The adapter maps token claims into this shape.
type Identity struct {
	UserID    string // backend user id (numeric in practice, kept as string)
	Email     string
	Role      Role
	Token     string    // bearer token for subsequent backend calls
	ExpiresAt time.Time // absolute expiry taken from the token's exp claim
}

// Session is the server-side record we persist for an authenticated user.
// ID is an opaque session identifier (random UUID); Token is the backend
// bearer token re-projected into every request that reads the session.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsAdmin reports whether the session belongs to an administrator.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

// HasToken reports whether the session carries a usable backend token.
func (s Session) HasToken() bool { return s.Token != "" }
