// Package restcountries implements the country data client against a
// REST Countries v3.1 compatible API.
package restcountries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/globoclima/globoclima-api/internal/config"
	"github.com/globoclima/globoclima-api/internal/domain"
	"github.com/globoclima/globoclima-api/internal/platform/upstream"
)

// allFields limits the bulk listing payload to what the paginated summary
// needs.
const allFields = "name,capital,population,region,flags"

// defaultTimeout bounds a single upstream attempt. Callers additionally
// control cancellation through the request context.
const defaultTimeout = 10 * time.Second

// Client fetches country records from the configured upstream. A single
// attempt is made per call; retry policy, if any, belongs to the caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// countryPayload mirrors the upstream wire shape. Field matching during
// decoding is case-insensitive (encoding/json), as the boundary requires.
type countryPayload struct {
	Name struct {
		Common   string `json:"common"`
		Official string `json:"official"`
	} `json:"name"`
	Capital    []string `json:"capital"`
	Population int64    `json:"population"`
	Region     string   `json:"region"`
	Subregion  string   `json:"subregion"`
	Currencies map[string]struct {
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
	} `json:"currencies"`
	Flags struct {
		PNG string `json:"png"`
		SVG string `json:"svg"`
	} `json:"flags"`
	Timezones []string `json:"timezones"`
}

// NewClient creates a country data client from the given configuration.
func NewClient(cfg config.CountryConfig, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.BaseURL == "" {
		return nil, errors.New("country base URL cannot be empty")
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
	}, nil
}

// GetByName fetches the country records matching the given free-form name.
// The upstream performs partial matching, so multiple records may come back
// for one query. A "no match" answer from the upstream yields an empty slice
// and a nil error; it is not a failure.
func (c *Client) GetByName(ctx context.Context, name string) ([]domain.Country, error) {
	endpoint := fmt.Sprintf("%s/name/%s", c.baseURL, url.PathEscape(name))

	payload, err := c.get(ctx, endpoint, true)
	if err != nil {
		return nil, err
	}
	return normalize(payload), nil
}

// GetAll fetches the full country listing with the reduced field set used by
// the paginated summary (name, capital, population, region, flags).
func (c *Client) GetAll(ctx context.Context) ([]domain.Country, error) {
	endpoint := fmt.Sprintf("%s/all?fields=%s", c.baseURL, url.QueryEscape(allFields))

	payload, err := c.get(ctx, endpoint, false)
	if err != nil {
		return nil, err
	}
	return normalize(payload), nil
}

// get performs a single GET against the upstream and decodes the country
// array. When emptyOn404 is set, an upstream 404 is treated as "no match"
// rather than a failure; the name search endpoint answers 404 for unknown
// names.
func (c *Client) get(ctx context.Context, endpoint string, emptyOn404 bool) ([]countryPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", upstream.ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("country upstream request failed", "url", endpoint, "error", err)
		return nil, fmt.Errorf("%w: %v", upstream.ErrUnavailable, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Debug("failed to close upstream response body", "error", closeErr)
		}
	}()

	if resp.StatusCode == http.StatusNotFound && emptyOn404 {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Debug("country upstream returned non-success status",
			"url", endpoint,
			"status", resp.StatusCode)
		return nil, fmt.Errorf("%w: unexpected status %d", upstream.ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", upstream.ErrUnavailable, err)
	}

	var payload []countryPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", upstream.ErrMalformedResponse, err)
	}
	return payload, nil
}

// normalize maps the upstream wire shape into domain records, preserving
// upstream order.
func normalize(payload []countryPayload) []domain.Country {
	countries := make([]domain.Country, 0, len(payload))
	for _, p := range payload {
		country := domain.Country{
			CommonName:   p.Name.Common,
			OfficialName: p.Name.Official,
			Capitals:     p.Capital,
			Population:   p.Population,
			Region:       p.Region,
			Subregion:    p.Subregion,
			FlagURL:      p.Flags.PNG,
			Timezones:    p.Timezones,
		}
		if len(p.Currencies) > 0 {
			country.Currencies = make(map[string]domain.Currency, len(p.Currencies))
			for code, cur := range p.Currencies {
				country.Currencies[code] = domain.Currency{Name: cur.Name, Symbol: cur.Symbol}
			}
		}
		countries = append(countries, country)
	}
	return countries
}
