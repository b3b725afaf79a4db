package bootstrap

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/ratehub/ratehub-ui/config"
	"github.com/ratehub/ratehub-ui/internal/adapters/backendauth"
	redisadapter "github.com/ratehub/ratehub-ui/internal/adapters/redis"
	"github.com/ratehub/ratehub-ui/internal/backend"
	"github.com/ratehub/ratehub-ui/internal/service"
)

// AuthOptions contains configuration for the auth service.
type AuthOptions struct {
	Auth        config.AuthConfig
	Backend     *backend.Client
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildAuthService creates the auth service backed by the ratings backend
// for credential checks and Redis for session storage. Returns nil when a
// required dependency is missing; the HTTP layer degrades to anonymous
// browsing in that case.
func BuildAuthService(opts AuthOptions) *service.AuthService {
	if opts.RedisClient == nil {
		if opts.Logger != nil {
			opts.Logger.Warn("auth service disabled: redis client not configured")
		}
		return nil
	}

	prov, err := backendauth.NewProvider(backendauth.Config{
		Backend:         opts.Backend,
		SessionDuration: opts.Auth.SessionTTL,
	})
	if err != nil {
		if opts.Logger != nil {
			opts.Logger.Warn("failed to create credentials provider, auth disabled", "error", err)
		}
		return nil
	}

	sessionStore := redisadapter.NewSessionStoreWithPrefix(opts.RedisClient, opts.Auth.SessionPrefix)

	return service.NewAuthService(service.AuthServiceOptions{
		Provider: prov,
		Sessions: sessionStore,
	})
}
