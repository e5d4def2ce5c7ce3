package geocoding

import (
	"log/slog"
	"net/http"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// GeocoderParams holds dependencies for the Geocoder, injected by Fx
type GeocoderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewGeocoder creates the configured provider wrapped in the call guard.
func NewGeocoder(params GeocoderParams) (service.Geocoder, error) {
	cfg := params.Config.Geocoding
	if cfg == nil {
		return nil, errors.New("geocoding is not configured")
	}
	logger := params.Logger

	var provider service.Geocoder
	var err error

	switch cfg.Provider {
	case config.GeocodingProviderNominatim:
		logger.Info("Using Nominatim geocoder")

		provider = NewNominatimGeocoder(cfg.Nominatim, &http.Client{})

	case config.GeocodingProviderGoogle:
		logger.Info("Using Google Maps geocoder")

		provider, err = NewGoogleGeocoder(cfg.Google)
		if err != nil {
			return nil, err
		}

	case config.GeocodingProviderStatic:
		logger.Info("Using static geocoder", slog.Int("places", len(cfg.Static)))

		provider, err = NewStaticGeocoder(cfg.Static)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown geocoding provider: %s", cfg.Provider)
	}

	return newGuardedGeocoder(provider, cfg.Provider, guardOptions{
		Timeout:       cfg.Timeout,
		RatePerSecond: cfg.RatePerSecond,
		Burst:         cfg.Burst,
	}, logger), nil
}

// Module provides the geocoding FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewGeocoder),
)
