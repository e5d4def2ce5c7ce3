package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNominatimServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, service.Geocoder) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g := NewNominatimGeocoder(&config.NominatimConfig{
		BaseURL:      srv.URL,
		UserAgent:    "marketplace-test",
		Email:        "ops@example.com",
		CountryCodes: "eg",
	}, srv.Client())

	return srv, g
}

func TestNominatim_Resolve(t *testing.T) {
	_, g := newNominatimServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Cairo, Egypt", r.URL.Query().Get("q"))
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "ops@example.com", r.URL.Query().Get("email"))
		assert.Equal(t, "eg", r.URL.Query().Get("countrycodes"))
		assert.Equal(t, "marketplace-test", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"lat":"30.0444196","lon":"31.2357116","display_name":"Cairo, Egypt"},
			{"lat":"30.1","lon":"31.3","display_name":"Second"}
		]`))
	})

	result, err := g.Resolve(context.Background(), "  Cairo, Egypt ")
	require.NoError(t, err)
	assert.InDelta(t, 30.0444196, result.Coordinates.Latitude, 1e-9)
	assert.InDelta(t, 31.2357116, result.Coordinates.Longitude, 1e-9)
	assert.Equal(t, "Cairo, Egypt", result.DisplayAddress)
	assert.Equal(t, ProviderNominatim, result.Provider)
}

func TestNominatim_NoMatch(t *testing.T) {
	_, g := newNominatimServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := g.Resolve(context.Background(), "zzzz-no-such-place")
	assert.ErrorIs(t, err, service.ErrGeocodeNoMatch)
}

func TestNominatim_EmptyInputSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	_, g := newNominatimServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	_, err := g.Resolve(context.Background(), "   ")
	assert.ErrorIs(t, err, service.ErrGeocodeInvalidInput)
	assert.Zero(t, calls.Load())
}

func TestNominatim_ProviderErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "rate limited",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "slow down", http.StatusTooManyRequests)
			},
		},
		{
			name: "malformed payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"not":"an array"`))
			},
		},
		{
			name: "unparseable latitude",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`[{"lat":"north","lon":"31.2"}]`))
			},
		},
		{
			name: "out of range",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`[{"lat":"95.0","lon":"31.2"}]`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, g := newNominatimServer(t, tt.handler)

			_, err := g.Resolve(context.Background(), "Cairo")
			require.Error(t, err)
			assert.ErrorIs(t, err, service.ErrGeocodeProvider)

			var providerErr *service.GeocodeProviderError
			require.True(t, errors.As(err, &providerErr))
			assert.Equal(t, ProviderNominatim, providerErr.Provider)
		})
	}
}

func TestNominatim_TransportFailure(t *testing.T) {
	srv, g := newNominatimServer(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := g.Resolve(context.Background(), "Cairo")
	assert.ErrorIs(t, err, service.ErrGeocodeProvider)
}

func TestNominatim_ContextDeadline(t *testing.T) {
	_, g := newNominatimServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := g.Resolve(ctx, "Cairo")
	assert.ErrorIs(t, err, service.ErrGeocodeProvider)
}

func TestNominatim_Defaults(t *testing.T) {
	g := NewNominatimGeocoder(nil, nil).(*nominatimGeocoder)

	assert.Equal(t, defaultNominatimBaseURL+"/search", g.searchURL)
	assert.Equal(t, defaultNominatimUserAgent, g.userAgent)
	assert.Equal(t, http.DefaultClient, g.client)
}
