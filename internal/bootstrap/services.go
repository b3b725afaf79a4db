package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/ratehub/ratehub-ui/config"
	"github.com/ratehub/ratehub-ui/internal/backend"
	"github.com/ratehub/ratehub-ui/internal/service"
)

// ServiceContainer holds the application services used by the HTTP layer.
type ServiceContainer struct {
	Auth    *service.AuthService
	Stores  *service.StoreService
	Users   *service.UserService
	Ratings *service.RatingService
}

// ServicesOptions contains dependencies for service construction.
type ServicesOptions struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildServices constructs the backend client and all application services.
func BuildServices(opts ServicesOptions) (ServiceContainer, error) {
	if opts.Config == nil {
		return ServiceContainer{}, fmt.Errorf("config is required")
	}

	client, err := backend.NewClient(backend.Config{
		BaseURL:           opts.Config.Backend.BaseURL,
		Timeout:           opts.Config.Backend.Timeout,
		ExposeErrorDetail: opts.Config.Backend.ExposeErrorDetail,
		Logger:            opts.Logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create backend client: %w", err)
	}

	return ServiceContainer{
		Auth: BuildAuthService(AuthOptions{
			Auth:        opts.Config.Auth,
			Backend:     client,
			RedisClient: opts.RedisClient,
			Logger:      opts.Logger,
		}),
		Stores:  service.NewStoreService(client),
		Users:   service.NewUserService(client),
		Ratings: service.NewRatingService(client),
	}, nil
}
