package main

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/globoclima/globoclima-api/internal/config"
	"github.com/globoclima/globoclima-api/internal/platform/openweather"
	"github.com/globoclima/globoclima-api/internal/platform/redisstore"
	"github.com/globoclima/globoclima-api/internal/platform/restcountries"
	"github.com/globoclima/globoclima-api/internal/service"
	"github.com/globoclima/globoclima-api/internal/service/auth"
	"github.com/globoclima/globoclima-api/internal/store"
)

// application bundles the wired dependencies shared by the HTTP handlers.
type application struct {
	config *config.Config
	logger *slog.Logger

	redisClient      *redis.Client
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	countryService   service.CountryService
}

// newApplication wires all dependencies from configuration. The redis
// connection is created here but only dialed lazily on first use.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	userStore := redisstore.NewRedisUserStore(redisClient, cfg.Auth.BcryptCost, logger)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, err
	}

	countryClient, err := restcountries.NewClient(cfg.Country, logger)
	if err != nil {
		return nil, err
	}

	weatherClient, err := openweather.NewClient(cfg.Weather, logger)
	if err != nil {
		return nil, err
	}

	countryService, err := service.NewCountryService(countryClient, weatherClient, logger)
	if err != nil {
		return nil, err
	}

	return &application{
		config:           cfg,
		logger:           logger,
		redisClient:      redisClient,
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: auth.NewBcryptVerifier(),
		countryService:   countryService,
	}, nil
}

// cleanup releases the application's long-lived resources.
func (app *application) cleanup() {
	if app.redisClient != nil {
		if err := app.redisClient.Close(); err != nil {
			app.logger.Error("failed to close redis client", "error", err)
		}
	}
}
