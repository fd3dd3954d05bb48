package restcountries_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/globoclima/globoclima-api/internal/config"
	"github.com/globoclima/globoclima-api/internal/platform/restcountries"
	"github.com/globoclima/globoclima-api/internal/platform/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const brazilJSON = `[{
	"name": {"common": "Brazil", "official": "Federative Republic of Brazil"},
	"capital": ["Brasília"],
	"population": 212559417,
	"region": "Americas",
	"subregion": "South America",
	"currencies": {"BRL": {"name": "Brazilian real", "symbol": "R$"}},
	"flags": {"png": "https://flagcdn.com/w320/br.png", "svg": "https://flagcdn.com/br.svg"},
	"timezones": ["UTC-05:00", "UTC-03:00"]
}]`

func newClient(t *testing.T, baseURL string) *restcountries.Client {
	t.Helper()

	client, err := restcountries.NewClient(config.CountryConfig{BaseURL: baseURL}, slog.Default())
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	_, err := restcountries.NewClient(config.CountryConfig{BaseURL: ""}, slog.Default())
	assert.Error(t, err)

	_, err = restcountries.NewClient(config.CountryConfig{BaseURL: "https://example.com"}, nil)
	assert.Error(t, err)
}

func TestGetByName(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/name/Brazil", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(brazilJSON))
	}))
	defer server.Close()

	client := newClient(t, server.URL)

	countries, err := client.GetByName(context.Background(), "Brazil")
	require.NoError(t, err)
	require.Len(t, countries, 1)

	brazil := countries[0]
	assert.Equal(t, "Brazil", brazil.CommonName)
	assert.Equal(t, "Federative Republic of Brazil", brazil.OfficialName)
	assert.Equal(t, []string{"Brasília"}, brazil.Capitals)
	assert.Equal(t, int64(212559417), brazil.Population)
	assert.Equal(t, "Americas", brazil.Region)
	assert.Equal(t, "South America", brazil.Subregion)
	assert.Equal(t, "Brazilian real", brazil.Currencies["BRL"].Name)
	assert.Equal(t, "R$", brazil.Currencies["BRL"].Symbol)
	assert.Equal(t, "https://flagcdn.com/w320/br.png", brazil.FlagURL)
	assert.Equal(t, []string{"UTC-05:00", "UTC-03:00"}, brazil.Timezones)
}

func TestGetByNameCaseInsensitiveFields(t *testing.T) {
	t.Parallel()

	// Upper-cased keys must still bind: field matching at the boundary is
	// case-insensitive.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"NAME": {"COMMON": "Japan", "Official": "Japan"}, "Capital": ["Tokyo"], "POPULATION": 125836021}]`))
	}))
	defer server.Close()

	client := newClient(t, server.URL)

	countries, err := client.GetByName(context.Background(), "japan")
	require.NoError(t, err)
	require.Len(t, countries, 1)
	assert.Equal(t, "Japan", countries[0].CommonName)
	assert.Equal(t, []string{"Tokyo"}, countries[0].Capitals)
	assert.Equal(t, int64(125836021), countries[0].Population)
}

func TestGetByNameNoMatchReturnsEmpty(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status":404,"message":"Not Found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := newClient(t, server.URL)

	countries, err := client.GetByName(context.Background(), "NoSuchCountryXYZ")
	require.NoError(t, err, "an empty match is not a fetch failure")
	assert.Empty(t, countries)
}

func TestGetByNameUpstreamFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newClient(t, server.URL)

	_, err := client.GetByName(context.Background(), "Brazil")
	assert.ErrorIs(t, err, upstream.ErrUnavailable)
}

func TestGetByNameMalformedResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"}`))
	}))
	defer server.Close()

	client := newClient(t, server.URL)

	_, err := client.GetByName(context.Background(), "Brazil")
	assert.ErrorIs(t, err, upstream.ErrMalformedResponse)
}

func TestGetByNameNetworkFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := newClient(t, server.URL)

	_, err := client.GetByName(context.Background(), "Brazil")
	assert.ErrorIs(t, err, upstream.ErrUnavailable)
}

func TestGetByNameEscapesQuery(t *testing.T) {
	t.Parallel()

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newClient(t, server.URL)

	_, err := client.GetByName(context.Background(), "south africa")
	require.NoError(t, err)
	assert.Equal(t, "/name/south%20africa", gotPath)
}

func TestGetAll(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/all", r.URL.Path)
		assert.Equal(t, "name,capital,population,region,flags", r.URL.Query().Get("fields"))
		_, _ = w.Write([]byte(`[
			{"name": {"common": "Brazil"}, "capital": ["Brasília"], "population": 212559417, "region": "Americas", "flags": {"png": "br.png"}},
			{"name": {"common": "Antarctica"}, "capital": [], "population": 1000, "region": "Antarctic", "flags": {"png": "aq.png"}}
		]`))
	}))
	defer server.Close()

	client := newClient(t, server.URL)

	countries, err := client.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, countries, 2)
	assert.Equal(t, "Brazil", countries[0].CommonName)
	assert.Empty(t, countries[1].Capitals)
}

func TestGetAllDoesNotSpecialCase404(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := newClient(t, server.URL)

	_, err := client.GetAll(context.Background())
	assert.ErrorIs(t, err, upstream.ErrUnavailable)
}

func TestGetByNameHonorsContextCancellation(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	client := newClient(t, server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := client.GetByName(ctx, "Brazil")
	assert.ErrorIs(t, err, upstream.ErrUnavailable)
}
