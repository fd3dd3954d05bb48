package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/globoclima/globoclima-api/internal/domain"
)

// Default pagination values, also used as the clamp targets for degenerate
// inputs.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
)

// CountryDataClient defines the country upstream operations the aggregation
// engine depends on.
type CountryDataClient interface {
	// GetByName fetches the country records matching a free-form name.
	// An empty slice with a nil error means "no match", distinct from a
	// fetch failure.
	GetByName(ctx context.Context, name string) ([]domain.Country, error)

	// GetAll fetches the full country listing with the reduced field set.
	GetAll(ctx context.Context) ([]domain.Country, error)
}

// WeatherDataClient defines the weather upstream operation the aggregation
// engine depends on.
type WeatherDataClient interface {
	// GetCurrent fetches the current weather for a city.
	GetCurrent(ctx context.Context, city string) (*domain.Weather, error)
}

// CountryService provides country aggregation operations.
type CountryService interface {
	// GetCountry resolves a country name to its matching records, in
	// upstream order. Returns ErrCountryNotFound when nothing matches.
	GetCountry(ctx context.Context, name string) ([]domain.Country, error)

	// GetCountryWithWeather resolves a country name to the canonical record
	// (first match), merges in the current weather of its capital, and
	// tolerates weather lookup failure: the aggregate still succeeds with
	// Weather set to nil.
	GetCountryWithWeather(ctx context.Context, name string) (*domain.CountryWithWeather, error)

	// ListCountries returns one page of the full country listing. Pages are
	// 1-indexed; non-positive page or pageSize values are clamped to the
	// defaults, and out-of-range pages yield an empty page.
	ListCountries(ctx context.Context, page, pageSize int) (*domain.CountryPage, error)
}

// countryService is the default CountryService implementation.
type countryService struct {
	countries CountryDataClient
	weather   WeatherDataClient
	logger    *slog.Logger
}

// Ensure countryService implements CountryService interface
var _ CountryService = (*countryService)(nil)

// NewCountryService creates a new CountryService with the given upstream
// clients.
func NewCountryService(
	countries CountryDataClient,
	weather WeatherDataClient,
	logger *slog.Logger,
) (CountryService, error) {
	if countries == nil {
		return nil, fmt.Errorf("country data client cannot be nil")
	}
	if weather == nil {
		return nil, fmt.Errorf("weather data client cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	return &countryService{
		countries: countries,
		weather:   weather,
		logger:    logger,
	}, nil
}

// GetCountry implements CountryService.GetCountry.
func (s *countryService) GetCountry(ctx context.Context, name string) ([]domain.Country, error) {
	countries, err := s.countries.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(countries) == 0 {
		return nil, fmt.Errorf("%w: country %q", ErrCountryNotFound, name)
	}
	return countries, nil
}

// GetCountryWithWeather implements CountryService.GetCountryWithWeather.
func (s *countryService) GetCountryWithWeather(
	ctx context.Context,
	name string,
) (*domain.CountryWithWeather, error) {
	countries, err := s.GetCountry(ctx, name)
	if err != nil {
		return nil, err
	}

	// Canonical record: first match in upstream order.
	country := countries[0]
	capital := country.Capital()

	var weather *domain.Weather
	if capital != domain.CapitalNone {
		// Country metadata is more valuable and more stable than live
		// weather, so a weather failure is absorbed here: logged, Weather
		// left nil, and the aggregate still succeeds.
		weather, err = s.weather.GetCurrent(ctx, capital)
		if err != nil {
			s.logger.Warn("could not fetch weather data for capital",
				"country", country.CommonName,
				"capital", capital,
				"error", err)
			weather = nil
		}
	}

	currencies := make([]domain.CurrencyInfo, 0, len(country.Currencies))
	for _, cur := range country.Currencies {
		currencies = append(currencies, domain.CurrencyInfo{Name: cur.Name, Symbol: cur.Symbol})
	}

	return &domain.CountryWithWeather{
		Name:         country.CommonName,
		OfficialName: country.OfficialName,
		Capital:      capital,
		Population:   country.Population,
		Region:       country.Region,
		Subregion:    country.Subregion,
		Currencies:   currencies,
		Flag:         country.FlagURL,
		Timezones:    country.Timezones,
		Weather:      weather,
	}, nil
}

// ListCountries implements CountryService.ListCountries.
// The upstream offers no pagination, so the full listing is fetched and
// sliced in memory.
func (s *countryService) ListCountries(
	ctx context.Context,
	page, pageSize int,
) (*domain.CountryPage, error) {
	if page <= 0 {
		page = DefaultPage
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	countries, err := s.countries.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	totalCount := len(countries)
	totalPages := (totalCount + pageSize - 1) / pageSize

	offset := (page - 1) * pageSize
	end := offset + pageSize
	if offset > totalCount {
		offset = totalCount
	}
	if end > totalCount {
		end = totalCount
	}

	summaries := make([]domain.CountrySummary, 0, end-offset)
	for _, country := range countries[offset:end] {
		summaries = append(summaries, domain.CountrySummary{
			Name:       country.CommonName,
			Capital:    country.Capital(),
			Population: country.Population,
			Region:     country.Region,
			Flag:       country.FlagURL,
		})
	}

	return &domain.CountryPage{
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Countries:  summaries,
	}, nil
}
