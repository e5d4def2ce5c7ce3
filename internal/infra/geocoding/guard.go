package geocoding

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// guardedGeocoder applies the call contract shared by every provider: input
// validation, a per-call deadline, a client-side request budget and error
// classification. Anything a provider returns that is not a known outcome is
// reported as a provider error.
type guardedGeocoder struct {
	next     service.Geocoder
	provider string
	timeout  time.Duration
	limiter  *rate.Limiter
	logger   *slog.Logger
}

type guardOptions struct {
	Timeout       time.Duration
	RatePerSecond float64
	Burst         int
}

func newGuardedGeocoder(next service.Geocoder, provider string, opts guardOptions, logger *slog.Logger) *guardedGeocoder {
	limit := rate.Inf
	if opts.RatePerSecond > 0 {
		limit = rate.Limit(opts.RatePerSecond)
	}
	burst := opts.Burst
	if burst < 1 {
		burst = 1
	}

	return &guardedGeocoder{
		next:     next,
		provider: provider,
		timeout:  opts.Timeout,
		limiter:  rate.NewLimiter(limit, burst),
		logger:   logger,
	}
}

func (g *guardedGeocoder) Resolve(ctx context.Context, address string) (*service.GeocodeResult, error) {
	query := strings.TrimSpace(address)
	if query == "" {
		return nil, service.ErrGeocodeInvalidInput
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	// Wait fails immediately when the reservation cannot be met before the deadline.
	if err := g.limiter.Wait(ctx); err != nil {
		g.logger.WarnContext(ctx, "geocode rate limited",
			slog.String("provider", g.provider),
			slog.Any("error", err),
		)

		return nil, service.NewGeocodeProviderError(g.provider, errors.Wrap(err, "rate limit"))
	}

	start := time.Now()
	result, err := g.next.Resolve(ctx, query)
	elapsed := time.Since(start)

	switch {
	case err == nil:
		if result == nil || !result.Coordinates.Valid() {
			return nil, service.NewGeocodeProviderError(g.provider, errors.New("provider returned no usable coordinates"))
		}
		g.logger.DebugContext(ctx, "geocode resolved",
			slog.String("provider", g.provider),
			slog.Duration("elapsed", elapsed),
			slog.Float64("latitude", result.Coordinates.Latitude),
			slog.Float64("longitude", result.Coordinates.Longitude),
		)

		return result, nil

	case errors.Is(err, service.ErrGeocodeNoMatch), errors.Is(err, service.ErrGeocodeInvalidInput):
		g.logger.InfoContext(ctx, "geocode found no match",
			slog.String("provider", g.provider),
			slog.Duration("elapsed", elapsed),
		)

		return nil, err

	case errors.Is(err, service.ErrGeocodeProvider):
		g.logger.WarnContext(ctx, "geocode provider failed",
			slog.String("provider", g.provider),
			slog.Duration("elapsed", elapsed),
			slog.Any("error", err),
		)

		return nil, err

	default:
		g.logger.WarnContext(ctx, "geocode failed",
			slog.String("provider", g.provider),
			slog.Duration("elapsed", elapsed),
			slog.Any("error", err),
		)

		return nil, service.NewGeocodeProviderError(g.provider, err)
	}
}
