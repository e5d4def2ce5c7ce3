package geocoding

import (
	"context"
	"testing"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic_Resolve(t *testing.T) {
	g, err := NewStaticGeocoder([]config.StaticPlaceConfig{
		{Address: "Cairo,  Egypt", Latitude: 30.0444, Longitude: 31.2357},
		{Address: "Giza", Latitude: 30.0131, Longitude: 31.2089, DisplayAddress: "Giza, Egypt"},
	})
	require.NoError(t, err)

	result, err := g.Resolve(context.Background(), " cairo, egypt ")
	require.NoError(t, err)
	assert.InDelta(t, 30.0444, result.Coordinates.Latitude, 1e-9)
	assert.Equal(t, "Cairo,  Egypt", result.DisplayAddress)
	assert.Equal(t, ProviderStatic, result.Provider)

	result, err = g.Resolve(context.Background(), "GIZA")
	require.NoError(t, err)
	assert.Equal(t, "Giza, Egypt", result.DisplayAddress)

	_, err = g.Resolve(context.Background(), "Alexandria")
	assert.ErrorIs(t, err, service.ErrGeocodeNoMatch)

	_, err = g.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, service.ErrGeocodeInvalidInput)
}

func TestStatic_RejectsBadEntries(t *testing.T) {
	_, err := NewStaticGeocoder([]config.StaticPlaceConfig{{Address: " "}})
	assert.Error(t, err)

	_, err = NewStaticGeocoder([]config.StaticPlaceConfig{{Address: "Nowhere", Latitude: 91}})
	assert.Error(t, err)
}

func TestStatic_CanceledContext(t *testing.T) {
	g, err := NewStaticGeocoder([]config.StaticPlaceConfig{{Address: "Cairo", Latitude: 30, Longitude: 31}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = g.Resolve(ctx, "Cairo")
	assert.ErrorIs(t, err, service.ErrGeocodeProvider)
}
