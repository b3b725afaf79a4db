package service

import (
	"context"
	"errors"

	domainauth "github.com/ratehub/ratehub-ui/internal/domain/auth"
	"github.com/ratehub/ratehub-ui/internal/domain/model"
	apperrors "github.com/ratehub/ratehub-ui/internal/errors"
)

// StoreBackend is the subset of the backend client used for store operations.
type StoreBackend interface {
	ListStores(ctx context.Context, token string) ([]model.Store, error)
	GetStore(ctx context.Context, token string, id int64) (model.Store, error)
	AddStore(ctx context.Context, token string, req model.AddStoreRequest) (model.AddStoreResponse, error)
	ListStoreOwners(ctx context.Context, token string) ([]model.User, error)
}

// StoreService exposes the store catalogue to handlers. Listing works
// without a session; everything else needs a backend token.
type StoreService struct {
	backend StoreBackend
}

// NewStoreService constructs a StoreService.
func NewStoreService(backend StoreBackend) *StoreService {
	return &StoreService{backend: backend}
}

// List returns all stores. With a session, each store carries the caller's
// own rating alongside the overall one.
func (s *StoreService) List(ctx context.Context, sess *domainauth.Session) ([]model.Store, error) {
	return s.backend.ListStores(ctx, sessionToken(sess))
}

// Get returns one store by id.
func (s *StoreService) Get(ctx context.Context, sess *domainauth.Session, id int64) (model.Store, error) {
	if id <= 0 {
		return model.Store{}, apperrors.NotFoundf("store %d not found", id)
	}
	return s.backend.GetStore(ctx, sessionToken(sess), id)
}

// Create adds a store on behalf of an administrator.
func (s *StoreService) Create(ctx context.Context, sess *domainauth.Session, req model.AddStoreRequest) (model.AddStoreResponse, error) {
	if err := requireToken(sess); err != nil {
		return model.AddStoreResponse{}, err
	}
	return s.backend.AddStore(ctx, sess.Token, req)
}

// Owners returns the accounts eligible to own a store.
func (s *StoreService) Owners(ctx context.Context, sess *domainauth.Session) ([]model.User, error) {
	if err := requireToken(sess); err != nil {
		return nil, err
	}
	return s.backend.ListStoreOwners(ctx, sess.Token)
}

func sessionToken(sess *domainauth.Session) string {
	if sess == nil {
		return ""
	}
	return sess.Token
}

var errNoSessionToken = errors.New("session has no backend token")

func requireToken(sess *domainauth.Session) error {
	if sess == nil || !sess.HasToken() {
		return apperrors.Wrap(errNoSessionToken, apperrors.ErrCodeUnauthorized, "Please sign in again")
	}
	return nil
}
