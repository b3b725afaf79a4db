package backendauth

// Package backendauth implements ports.CredentialsProvider against the
// ratings backend's login endpoint.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ratehub/ratehub-ui/internal/backend"
	domainauth "github.com/ratehub/ratehub-ui/internal/domain/auth"
	"github.com/ratehub/ratehub-ui/internal/domain/model"
	apperrors "github.com/ratehub/ratehub-ui/internal/errors"
)

// Config controls the credentials provider behavior.
type Config struct {
	Backend *backend.Client
	// SessionDuration bounds the session lifetime when the token carries no
	// exp claim. Default 8h when zero.
	SessionDuration time.Duration
}

// Provider logs users in against the backend and projects the returned
// token into a domain identity. The token is decoded without signature
// verification: this service never trusts the claims for authorization,
// it only mirrors them for display and navigation. The backend re-verifies
// the token on every API call.
type Provider struct {
	backend         *backend.Client
	sessionDuration time.Duration
}

// NewProvider constructs a provider from Config.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.Backend == nil {
		return nil, errors.New("backendauth: backend client is required")
	}
	dur := cfg.SessionDuration
	if dur == 0 {
		dur = 8 * time.Hour
	}
	return &Provider{
		backend:         cfg.Backend,
		sessionDuration: dur,
	}, nil
}

// flexID decodes an id claim that arrives as a JSON number from some
// backend deployments and a string from others.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

// tokenClaims is the claim subset the backend embeds in its tokens.
type tokenClaims struct {
	ID    flexID `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Login authenticates the credentials and returns the resolved identity.
// Identity fields prefer token claims; the login response's user object
// fills any gaps for backends that return a bare token.
func (p *Provider) Login(ctx context.Context, email, password string) (domainauth.Identity, error) {
	resp, err := p.backend.Login(ctx, model.LoginRequest{Email: email, Password: password})
	if err != nil {
		return domainauth.Identity{}, err
	}
	if strings.TrimSpace(resp.Token) == "" {
		return domainauth.Identity{}, apperrors.Unauthorized("Invalid email or password")
	}

	identity := domainauth.Identity{
		Token:     resp.Token,
		ExpiresAt: time.Now().Add(p.sessionDuration),
	}
	if resp.User != nil {
		identity.UserID = fmt.Sprintf("%d", resp.User.ID)
		identity.Email = resp.User.Email
		identity.Role = domainauth.ParseRole(resp.User.Role)
	}

	claims := &tokenClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(resp.Token, claims); err == nil {
		if claims.ID != "" {
			identity.UserID = string(claims.ID)
		}
		if claims.Email != "" {
			identity.Email = claims.Email
		}
		if claims.Role != "" {
			identity.Role = domainauth.ParseRole(claims.Role)
		}
		if claims.ExpiresAt != nil && !claims.ExpiresAt.IsZero() {
			identity.ExpiresAt = claims.ExpiresAt.Time
		}
	}

	if identity.Email == "" {
		identity.Email = email
	}
	if identity.Role == "" {
		identity.Role = domainauth.RoleUnknown
	}
	return identity, nil
}
