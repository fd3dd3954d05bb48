package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globoclima/globoclima-api/internal/config"
	"github.com/globoclima/globoclima-api/internal/platform/redisstore"
)

const testJWTSecret = "test-secret-that-is-at-least-32-characters-long"

// newTestApplication wires a full application against miniredis and fake
// upstream HTTP servers, mirroring what newApplication does in production.
func newTestApplication(t *testing.T, countryHandler, weatherHandler http.HandlerFunc) *application {
	t.Helper()

	mr := miniredis.RunT(t)

	countrySrv := httptest.NewServer(countryHandler)
	t.Cleanup(countrySrv.Close)
	weatherSrv := httptest.NewServer(weatherHandler)
	t.Cleanup(weatherSrv.Close)

	cfg := &config.Config{
		Server:  config.ServerConfig{Port: 8080, LogLevel: "error"},
		Country: config.CountryConfig{BaseURL: countrySrv.URL},
		Weather: config.WeatherConfig{BaseURL: weatherSrv.URL, APIKey: "test-key"},
		Redis:   config.RedisConfig{Addr: mr.Addr()},
		Auth: config.AuthConfig{
			JWTSecret:            testJWTSecret,
			TokenLifetimeMinutes: 24 * 60,
			BcryptCost:           4,
		},
	}

	app, err := newApplication(cfg, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := app.redisClient.Close(); err != nil {
			t.Logf("closing redis client: %v", err)
		}
	})
	return app
}

func serveNotFound(w http.ResponseWriter, r *http.Request) {
	http.Error(w, `{"status":404}`, http.StatusNotFound)
}

func TestHealthCheck(t *testing.T) {
	app := newTestApplication(t, serveNotFound, serveNotFound)
	router := app.setupRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "ok", resp.Checks["redis"])
}

func TestHealthCheckDegradedWhenRedisDown(t *testing.T) {
	app := newTestApplication(t, serveNotFound, serveNotFound)

	// Point the store at a closed port.
	require.NoError(t, app.redisClient.Close())
	app.redisClient = redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	app.userStore = redisstore.NewRedisUserStore(app.redisClient, 4, slog.Default())
	router := app.setupRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "unreachable", resp.Checks["redis"])
}

func TestAuthFlowEndToEnd(t *testing.T) {
	app := newTestApplication(t, serveNotFound, serveNotFound)
	router := app.setupRouter()

	// Register
	reg := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"username":"maria","password":"secret1"}`))
	regRec := httptest.NewRecorder()
	router.ServeHTTP(regRec, reg)
	require.Equal(t, http.StatusCreated, regRec.Code, regRec.Body.String())

	// Login
	login := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"username":"maria","password":"secret1"}`))
	loginRec := httptest.NewRecorder()
	router.ServeHTTP(loginRec, login)
	require.Equal(t, http.StatusOK, loginRec.Code, loginRec.Body.String())

	var loginResp struct {
		Token    string `json:"token"`
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(loginRec.Body.Bytes(), &loginResp))
	require.NotEmpty(t, loginResp.Token)

	// Use the token
	me := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	me.Header.Set("Authorization", "Bearer "+loginResp.Token)
	meRec := httptest.NewRecorder()
	router.ServeHTTP(meRec, me)
	require.Equal(t, http.StatusOK, meRec.Code, meRec.Body.String())

	var meResp struct {
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(meRec.Body.Bytes(), &meResp))
	assert.Equal(t, "maria", meResp.Username)
}

func TestCountryWithWeatherEndToEnd(t *testing.T) {
	countryHandler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`[{
			"name": {"common": "Brazil", "official": "Federative Republic of Brazil"},
			"capital": ["Brasília"],
			"population": 212559417,
			"region": "Americas",
			"currencies": {"BRL": {"name": "Brazilian real", "symbol": "R$"}},
			"flags": {"png": "https://flagcdn.com/w320/br.png"}
		}]`))
		assert.NoError(t, err)
	}
	weatherHandler := func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Brasília", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{
			"main": {"temp": 24.37, "feels_like": 24.91, "temp_min": 22.0, "temp_max": 27.04, "humidity": 48},
			"weather": [{"main": "Clouds", "description": "nuvens dispersas"}]
		}`))
		assert.NoError(t, err)
	}

	app := newTestApplication(t, countryHandler, weatherHandler)
	router := app.setupRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/country/Brazil/weather", nil))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Name    string `json:"name"`
		Capital string `json:"capital"`
		Weather *struct {
			Temperature float64 `json:"temperature"`
			Main        string  `json:"main"`
		} `json:"weather"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Brazil", resp.Name)
	assert.Equal(t, "Brasília", resp.Capital)
	require.NotNil(t, resp.Weather)
	assert.InDelta(t, 24.4, resp.Weather.Temperature, 0.001)
	assert.Equal(t, "Clouds", resp.Weather.Main)
}

func TestCORSHeaders(t *testing.T) {
	app := newTestApplication(t, serveNotFound, serveNotFound)
	router := app.setupRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/country", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
