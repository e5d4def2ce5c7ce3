// Package service declares the ports the use cases call out through: address
// geocoding, attachment storage, password hashing and token issuing.
package service

import (
	"context"
	"fmt"

	"marketplace/internal/domain/geo"

	"github.com/pkg/errors"
)

var (
	// ErrGeocodeInvalidInput is returned for an empty or whitespace-only address.
	// No provider is contacted.
	ErrGeocodeInvalidInput = errors.New("geocode: address is empty")

	// ErrGeocodeNoMatch is returned when the provider answered but found nothing.
	ErrGeocodeNoMatch = errors.New("geocode: no match")

	// ErrGeocodeProvider matches every *GeocodeProviderError via errors.Is.
	ErrGeocodeProvider = errors.New("geocode: provider unavailable")
)

// GeocodeResult is a resolved address.
type GeocodeResult struct {
	Coordinates    geo.Coordinates
	DisplayAddress string // Provider's canonical form of the address, may be empty.
	Provider       string
}

// GeocodeProviderError reports that the provider could not be reached or gave an
// unusable answer (timeout, transport failure, non-2xx status, malformed payload,
// out-of-range coordinates, rate limiting).
type GeocodeProviderError struct {
	Provider string
	Err      error
}

func NewGeocodeProviderError(provider string, err error) *GeocodeProviderError {
	return &GeocodeProviderError{Provider: provider, Err: err}
}

func (e *GeocodeProviderError) Error() string {
	return fmt.Sprintf("geocode: provider %s: %v", e.Provider, e.Err)
}

func (e *GeocodeProviderError) Unwrap() error {
	return e.Err
}

func (e *GeocodeProviderError) Is(target error) bool {
	return target == ErrGeocodeProvider
}

// Geocoder resolves a free-text address to coordinates.
type Geocoder interface {
	// Resolve returns the first candidate the provider ranks for address, or one of
	// ErrGeocodeInvalidInput, ErrGeocodeNoMatch or a *GeocodeProviderError.
	Resolve(ctx context.Context, address string) (*GeocodeResult, error)
}
