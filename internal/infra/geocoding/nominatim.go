// Package geocoding provides the providers behind service.Geocoder.
package geocoding

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"marketplace/config"
	"marketplace/internal/domain/geo"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	ProviderNominatim = "nominatim"

	defaultNominatimBaseURL   = "https://nominatim.openstreetmap.org"
	defaultNominatimUserAgent = "marketplace-geocoder/1.0"

	// Error bodies are only read for log context.
	maxErrorBodyBytes = 512
)

// nominatimGeocoder queries the OpenStreetMap Nominatim search API.
type nominatimGeocoder struct {
	client       *http.Client
	searchURL    string
	userAgent    string
	email        string
	countryCodes string
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NewNominatimGeocoder builds a Nominatim provider. A nil cfg uses the public endpoint.
func NewNominatimGeocoder(cfg *config.NominatimConfig, client *http.Client) service.Geocoder {
	g := &nominatimGeocoder{
		client:    client,
		searchURL: defaultNominatimBaseURL + "/search",
		userAgent: defaultNominatimUserAgent,
	}
	if g.client == nil {
		g.client = http.DefaultClient
	}

	if cfg != nil {
		if cfg.BaseURL != "" {
			g.searchURL = strings.TrimRight(cfg.BaseURL, "/") + "/search"
		}
		if cfg.UserAgent != "" {
			g.userAgent = cfg.UserAgent
		}
		g.email = cfg.Email
		g.countryCodes = cfg.CountryCodes
	}

	return g
}

func (g *nominatimGeocoder) Resolve(ctx context.Context, address string) (*service.GeocodeResult, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, service.ErrGeocodeInvalidInput
	}

	params := url.Values{}
	params.Set("q", address)
	params.Set("format", "jsonv2")
	params.Set("limit", "1")
	if g.email != "" {
		params.Set("email", g.email)
	}
	if g.countryCodes != "" {
		params.Set("countrycodes", g.countryCodes)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.searchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, g.providerError(errors.Wrap(err, "build request"))
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, g.providerError(errors.Wrap(err, "request failed"))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return nil, g.providerError(errors.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, g.providerError(errors.Wrap(err, "decode response"))
	}

	if len(places) == 0 {
		return nil, service.ErrGeocodeNoMatch
	}

	coords, err := parseNominatimCoordinates(places[0])
	if err != nil {
		return nil, g.providerError(err)
	}

	return &service.GeocodeResult{
		Coordinates:    coords,
		DisplayAddress: places[0].DisplayName,
		Provider:       ProviderNominatim,
	}, nil
}

func (g *nominatimGeocoder) providerError(err error) error {
	return service.NewGeocodeProviderError(ProviderNominatim, err)
}

// Nominatim encodes coordinates as JSON strings.
func parseNominatimCoordinates(place nominatimPlace) (geo.Coordinates, error) {
	lat, err := strconv.ParseFloat(place.Lat, 64)
	if err != nil {
		return geo.Coordinates{}, errors.Wrapf(err, "parse latitude %q", place.Lat)
	}

	lng, err := strconv.ParseFloat(place.Lon, 64)
	if err != nil {
		return geo.Coordinates{}, errors.Wrapf(err, "parse longitude %q", place.Lon)
	}

	coords := geo.Coordinates{Latitude: lat, Longitude: lng}
	if !coords.Valid() {
		return geo.Coordinates{}, errors.Errorf("coordinates out of range: %v,%v", lat, lng)
	}

	return coords, nil
}
