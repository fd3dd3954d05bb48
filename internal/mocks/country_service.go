package mocks

import (
	"context"

	"github.com/globoclima/globoclima-api/internal/domain"
	"github.com/globoclima/globoclima-api/internal/service"
)

// MockCountryService is a configurable test double for service.CountryService.
// Calls with a nil function field return service.ErrCountryNotFound so that
// handler tests fail loudly when they hit an unconfigured path.
type MockCountryService struct {
	GetCountryFn            func(ctx context.Context, name string) ([]domain.Country, error)
	GetCountryWithWeatherFn func(ctx context.Context, name string) (*domain.CountryWithWeather, error)
	ListCountriesFn         func(ctx context.Context, page, pageSize int) (*domain.CountryPage, error)
}

var _ service.CountryService = (*MockCountryService)(nil)

func (m *MockCountryService) GetCountry(
	ctx context.Context,
	name string,
) ([]domain.Country, error) {
	if m.GetCountryFn != nil {
		return m.GetCountryFn(ctx, name)
	}
	return nil, service.ErrCountryNotFound
}

func (m *MockCountryService) GetCountryWithWeather(
	ctx context.Context,
	name string,
) (*domain.CountryWithWeather, error) {
	if m.GetCountryWithWeatherFn != nil {
		return m.GetCountryWithWeatherFn(ctx, name)
	}
	return nil, service.ErrCountryNotFound
}

func (m *MockCountryService) ListCountries(
	ctx context.Context,
	page, pageSize int,
) (*domain.CountryPage, error) {
	if m.ListCountriesFn != nil {
		return m.ListCountriesFn(ctx, page, pageSize)
	}
	return nil, service.ErrCountryNotFound
}
