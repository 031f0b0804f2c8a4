package container

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/linkme-app/linkme-backend/internal/config"
	httpdelivery "github.com/linkme-app/linkme-backend/internal/delivery/http"
	"github.com/linkme-app/linkme-backend/internal/delivery/http/handler"
	"github.com/linkme-app/linkme-backend/internal/delivery/http/middleware"
	"github.com/linkme-app/linkme-backend/internal/infrastructure/database"
	"github.com/linkme-app/linkme-backend/internal/infrastructure/gemini"
	"github.com/linkme-app/linkme-backend/internal/infrastructure/server"
	"github.com/linkme-app/linkme-backend/internal/repository"
	"github.com/linkme-app/linkme-backend/internal/repository/memory"
	"github.com/linkme-app/linkme-backend/internal/repository/postgres"
	"github.com/linkme-app/linkme-backend/internal/repository/redisgeo"
	"github.com/linkme-app/linkme-backend/internal/usecase/auth"
	"github.com/linkme-app/linkme-backend/internal/usecase/connection"
	"github.com/linkme-app/linkme-backend/internal/usecase/explore"
	"github.com/linkme-app/linkme-backend/internal/usecase/location"
	"github.com/linkme-app/linkme-backend/internal/usecase/nearby"
	"github.com/linkme-app/linkme-backend/internal/usecase/profile"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.GeminiClient
	Log    *slog.Logger
}

// repos groups the concrete stores behind the repository interfaces. The
// STORAGE_BACKEND and STORAGE_LOCATIONS settings pick the implementations.
type repos struct {
	users       repository.UserRepository
	profiles    repository.ProfileRepository
	locations   repository.LocationRepository
	connections repository.ConnectionRepository
	messages    repository.MessageRepository
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, log *slog.Logger) (*Container, error) {
	var (
		db          *sqlx.DB
		redisClient *redis.Client
		err         error
	)

	if cfg.Storage.Backend == "postgres" || cfg.Storage.Locations == "postgres" {
		db, err = database.NewPostgresDB(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
	}
	if cfg.Storage.Locations == "redis" {
		redisClient, err = database.NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
	}

	// AI features are optional; the explore usecase degrades without them.
	var geminiClient *gemini.GeminiClient
	if cfg.GeminiAPIKey != "" {
		geminiClient, err = gemini.NewGeminiClient(cfg.GeminiAPIKey)
		if err != nil {
			log.Warn("failed to initialize gemini client", "err", err)
			geminiClient = nil
		}
	}

	r := buildRepos(cfg, db, redisClient)

	// Initialize use cases
	profileUseCase := profile.NewProfileUseCase(r.profiles, r.users)

	authUseCase := auth.NewGoogleAuthUseCase(
		r.users,
		profileUseCase,
		cfg.Google.ClientID,
		cfg.JWT.AccessSecret,
		cfg.JWT.AccessExpiryMin,
		log,
	)

	locationUseCase := location.NewLocationUseCase(r.locations)

	nearbyUseCase := nearby.NewNearbyUseCase(r.locations, r.profiles, r.users, log)

	connectionUseCase := connection.NewConnectionUseCase(
		r.connections,
		r.messages,
		r.profiles,
		r.users,
		log,
	)

	var finder explore.PlaceFinder
	if geminiClient != nil {
		finder = geminiClient
	}
	exploreUseCase := explore.NewExploreUseCase(finder, log)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	locationHandler := handler.NewLocationHandler(locationUseCase)
	nearbyHandler := handler.NewNearbyHandler(nearbyUseCase)
	connectionHandler := handler.NewConnectionHandler(connectionUseCase)
	exploreHandler := handler.NewExploreHandler(exploreUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := httpdelivery.NewRouter(
		authHandler,
		profileHandler,
		locationHandler,
		nearbyHandler,
		connectionHandler,
		exploreHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter, log)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
		Gemini: geminiClient,
		Log:    log,
	}, nil
}

func buildRepos(cfg *config.Config, db *sqlx.DB, redisClient *redis.Client) repos {
	var r repos

	switch cfg.Storage.Backend {
	case "memory":
		store := memory.NewStore()
		r.users = store.Users()
		r.profiles = store.Profiles()
		r.connections = store.Connections()
		r.messages = store.Messages()
		r.locations = store.Locations()
	default:
		r.users = postgres.NewUserRepository(db)
		r.profiles = postgres.NewProfileRepository(db)
		r.connections = postgres.NewConnectionRepository(db)
		r.messages = postgres.NewMessageRepository(db)
		r.locations = postgres.NewLocationRepository(db)
	}

	// Location storage is selectable independently of the main backend.
	switch cfg.Storage.Locations {
	case "redis":
		r.locations = redisgeo.NewLocationRepository(redisClient)
	case "postgres":
		if cfg.Storage.Backend == "memory" {
			r.locations = postgres.NewLocationRepository(db)
		}
	}

	return r
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}

	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Log.Warn("error closing redis", "err", err)
		}
	}

	// Close database
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
