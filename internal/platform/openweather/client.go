// Package openweather implements the weather data client against an
// OpenWeatherMap-compatible current weather API.
package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/globoclima/globoclima-api/internal/config"
	"github.com/globoclima/globoclima-api/internal/domain"
	"github.com/globoclima/globoclima-api/internal/platform/upstream"
)

var (
	// ErrAPIKeyMissing is returned when no weather API credential is
	// configured at call time. The request is never sent without one.
	ErrAPIKeyMissing = errors.New("weather API key is not configured")

	// ErrEmptyCity is returned when the caller passes an empty city name.
	ErrEmptyCity = errors.New("city name cannot be empty")
)

const defaultTimeout = 10 * time.Second

// Client fetches current weather for a named city. Requests always use
// metric units and localized description text. A single attempt is made per
// call.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// weatherPayload mirrors the upstream wire shape: temperatures and humidity
// under "main", condition code and description under "weather[]".
type weatherPayload struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Name string `json:"name"`
}

// NewClient creates a weather data client from the given configuration.
// An empty API key is accepted here: startup must not fail because of it and
// the missing credential surfaces on the first call instead.
func NewClient(cfg config.WeatherConfig, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("weather base URL cannot be empty")
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
	}, nil
}

// GetCurrent fetches the current weather for the given city, with all
// temperature fields rounded to one decimal place.
func (c *Client) GetCurrent(ctx context.Context, city string) (*domain.Weather, error) {
	if city == "" {
		return nil, ErrEmptyCity
	}
	if c.apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")
	query.Set("lang", "pt_br")
	endpoint := fmt.Sprintf("%s/weather?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", upstream.ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("weather upstream request failed", "city", city, "error", err)
		return nil, fmt.Errorf("%w: %v", upstream.ErrUnavailable, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Debug("failed to close upstream response body", "error", closeErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Debug("weather upstream returned non-success status",
			"city", city,
			"status", resp.StatusCode)
		return nil, fmt.Errorf("%w: unexpected status %d", upstream.ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", upstream.ErrUnavailable, err)
	}

	var payload weatherPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", upstream.ErrMalformedResponse, err)
	}
	if len(payload.Weather) == 0 {
		return nil, fmt.Errorf("%w: missing weather conditions", upstream.ErrMalformedResponse)
	}

	return &domain.Weather{
		Temperature: round1(payload.Main.Temp),
		FeelsLike:   round1(payload.Main.FeelsLike),
		MinTemp:     round1(payload.Main.TempMin),
		MaxTemp:     round1(payload.Main.TempMax),
		Humidity:    payload.Main.Humidity,
		Main:        payload.Weather[0].Main,
		Description: payload.Weather[0].Description,
	}, nil
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
