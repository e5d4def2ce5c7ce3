package geocoding

import (
	"context"
	"strings"

	"marketplace/config"
	"marketplace/internal/domain/geo"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
)

const ProviderStatic = "static"

// staticGeocoder answers from a fixed address table. Used for local development
// and end-to-end runs without network access.
type staticGeocoder struct {
	places map[string]service.GeocodeResult
}

// NewStaticGeocoder indexes places by their lower-cased, trimmed address.
func NewStaticGeocoder(places []config.StaticPlaceConfig) (service.Geocoder, error) {
	g := &staticGeocoder{places: make(map[string]service.GeocodeResult, len(places))}

	for _, p := range places {
		key := staticKey(p.Address)
		if key == "" {
			return nil, errors.New("static geocoding entry has an empty address")
		}

		coords := geo.Coordinates{Latitude: p.Latitude, Longitude: p.Longitude}
		if !coords.Valid() {
			return nil, errors.Errorf("static geocoding entry %q has invalid coordinates", p.Address)
		}

		display := p.DisplayAddress
		if display == "" {
			display = strings.TrimSpace(p.Address)
		}

		g.places[key] = service.GeocodeResult{
			Coordinates:    coords,
			DisplayAddress: display,
			Provider:       ProviderStatic,
		}
	}

	return g, nil
}

func (g *staticGeocoder) Resolve(ctx context.Context, address string) (*service.GeocodeResult, error) {
	key := staticKey(address)
	if key == "" {
		return nil, service.ErrGeocodeInvalidInput
	}

	if err := ctx.Err(); err != nil {
		return nil, service.NewGeocodeProviderError(ProviderStatic, err)
	}

	result, ok := g.places[key]
	if !ok {
		return nil, service.ErrGeocodeNoMatch
	}

	return &result, nil
}

func staticKey(address string) string {
	return strings.ToLower(strings.Join(strings.Fields(address), " "))
}
