package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/globoclima/globoclima-api/internal/api/shared"
	"github.com/globoclima/globoclima-api/internal/service"
)

// CountryHandler handles the country and country+weather endpoints.
type CountryHandler struct {
	countryService service.CountryService
}

// NewCountryHandler creates a new CountryHandler with the given dependencies.
func NewCountryHandler(countryService service.CountryService) *CountryHandler {
	return &CountryHandler{
		countryService: countryService,
	}
}

// GetCountry handles GET /country/{countryName}. It returns every upstream
// match for the name, in upstream order.
func (h *CountryHandler) GetCountry(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "countryName")
	if name == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Country name is required")
		return
	}

	countries, err := h.countryService.GetCountry(r.Context(), name)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, countries)
}

// GetCountryWithWeather handles GET /country/{countryName}/weather. The
// response merges the best-matching country with the current weather in its
// capital; the weather field is omitted when it cannot be fetched.
func (h *CountryHandler) GetCountryWithWeather(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "countryName")
	if name == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Country name is required")
		return
	}

	result, err := h.countryService.GetCountryWithWeather(r.Context(), name)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// ListCountries handles GET /country with optional page and pageSize query
// parameters. Unparsable or missing values fall back to the defaults.
func (h *CountryHandler) ListCountries(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", service.DefaultPage)
	pageSize := queryInt(r, "pageSize", service.DefaultPageSize)

	pageResult, err := h.countryService.ListCountries(r.Context(), page, pageSize)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, pageResult)
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent or not a number. Range clamping happens in the service.
func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
