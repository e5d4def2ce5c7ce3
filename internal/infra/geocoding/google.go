package geocoding

import (
	"context"
	"strings"

	"marketplace/config"
	"marketplace/internal/domain/geo"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"googlemaps.github.io/maps"
)

const ProviderGoogle = "google"

// googleGeocoder resolves addresses with the Google Maps Geocoding API.
type googleGeocoder struct {
	client *maps.Client
	region string
}

// NewGoogleGeocoder builds the Google provider from its API credentials.
func NewGoogleGeocoder(cfg *config.GoogleMapsConfig) (service.Geocoder, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("google maps api key is required for google provider")
	}

	opts := []maps.ClientOption{maps.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, maps.WithBaseURL(strings.TrimRight(cfg.BaseURL, "/")))
	}

	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "maps.NewClient")
	}

	return &googleGeocoder{client: client, region: cfg.Region}, nil
}

func (g *googleGeocoder) Resolve(ctx context.Context, address string) (*service.GeocodeResult, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, service.ErrGeocodeInvalidInput
	}

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address: address,
		Region:  g.region,
	})
	if err != nil {
		if strings.Contains(err.Error(), "ZERO_RESULTS") {
			return nil, service.ErrGeocodeNoMatch
		}

		return nil, service.NewGeocodeProviderError(ProviderGoogle, errors.Wrap(err, "geocode request"))
	}

	if len(results) == 0 {
		return nil, service.ErrGeocodeNoMatch
	}

	first := results[0]
	coords := geo.Coordinates{
		Latitude:  first.Geometry.Location.Lat,
		Longitude: first.Geometry.Location.Lng,
	}
	if !coords.Valid() {
		return nil, service.NewGeocodeProviderError(ProviderGoogle, errors.Errorf("coordinates out of range: %v", coords))
	}

	return &service.GeocodeResult{
		Coordinates:    coords,
		DisplayAddress: first.FormattedAddress,
		Provider:       ProviderGoogle,
	}, nil
}
