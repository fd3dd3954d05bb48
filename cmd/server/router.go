package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/globoclima/globoclima-api/internal/api"
	apimiddleware "github.com/globoclima/globoclima-api/internal/api/middleware"
	"github.com/globoclima/globoclima-api/internal/api/shared"
)

// setupRouter configures the application router with all routes and
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)
	r.Use(corsMiddleware)

	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.passwordVerifier)
	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService)
	countryHandler := api.NewCountryHandler(app.countryService)

	// Authentication endpoints (public)
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Get("/auth/me", authHandler.Me)
	})

	// Country and weather endpoints (public)
	r.Get("/country", countryHandler.ListCountries)
	r.Get("/country/{countryName}", countryHandler.GetCountry)
	r.Get("/country/{countryName}/weather", countryHandler.GetCountryWithWeather)

	r.Get("/health", app.healthCheck)

	return r
}

// healthResponse is the body returned by the health endpoint.
type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// healthCheck reports overall service health. Redis is the only hard
// dependency; the upstream APIs are checked per request, not here.
func (app *application) healthCheck(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status: "ok",
		Checks: map[string]string{"redis": "ok"},
	}
	status := http.StatusOK

	if err := app.userStore.Ping(r.Context()); err != nil {
		app.logger.Error("health check: redis unreachable", "error", err)
		resp.Status = "degraded"
		resp.Checks["redis"] = "unreachable"
		status = http.StatusServiceUnavailable
	}

	shared.RespondWithJSON(w, r, status, resp)
}

// corsMiddleware applies permissive CORS headers so browser front ends can
// call the API from any origin.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
