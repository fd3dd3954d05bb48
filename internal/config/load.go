package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default values applied when the corresponding environment variable is
// unset. Startup never fails solely because an optional value is missing;
// the dev JWT secret exists so local runs work out of the box and must be
// overridden in any real deployment.
const (
	defaultPort                 = 8080
	defaultLogLevel             = "info"
	defaultCountryBaseURL       = "https://restcountries.com/v3.1"
	defaultWeatherBaseURL       = "https://api.openweathermap.org/data/2.5"
	defaultRedisAddr            = "localhost:6379"
	defaultJWTSecret            = "globoclima-dev-secret-do-not-use-in-production"
	defaultTokenLifetimeMinutes = 24 * 60
)

// Load reads configuration from environment variables (with the GLOBOCLIMA_
// prefix) on top of the documented defaults, then validates the result.
// Environment variables use underscores for nesting, e.g.
// GLOBOCLIMA_WEATHER_API_KEY maps to weather.api_key.
// Returns a populated Config struct or an error if validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", defaultPort)
	v.SetDefault("server.log_level", defaultLogLevel)
	v.SetDefault("country.base_url", defaultCountryBaseURL)
	v.SetDefault("weather.base_url", defaultWeatherBaseURL)
	v.SetDefault("weather.api_key", "")
	v.SetDefault("redis.addr", defaultRedisAddr)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("auth.jwt_secret", defaultJWTSecret)
	v.SetDefault("auth.token_lifetime_minutes", defaultTokenLifetimeMinutes)
	v.SetDefault("auth.bcrypt_cost", 0) // 0 means bcrypt.DefaultCost

	v.SetEnvPrefix("GLOBOCLIMA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
