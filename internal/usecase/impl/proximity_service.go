package impl

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/geo"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// proximityService implements the ProximityUsecase interface.
type proximityService struct {
	listingRepo     repository.ListingRepository
	geocoder        service.Geocoder
	defaultRadiusKm float64
	maxRadiusKm     float64
	defaultLimit    int
	maxLimit        int
	logger          *slog.Logger
}

// ProximityServiceParams holds dependencies for ProximityService, injected by Fx.
type ProximityServiceParams struct {
	fx.In

	ListingRepo repository.ListingRepository
	Geocoder    service.Geocoder
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProximityService is the constructor for proximityService.
func NewProximityService(params ProximityServiceParams) usecase.ProximityUsecase {
	defaultLimit, maxLimit := pageLimits(params.Config)
	defaultRadius, maxRadius := 50.0, 500.0
	if params.Config != nil && params.Config.Search != nil {
		if params.Config.Search.DefaultRadiusKm > 0 {
			defaultRadius = params.Config.Search.DefaultRadiusKm
		}
		if params.Config.Search.MaxRadiusKm > 0 {
			maxRadius = params.Config.Search.MaxRadiusKm
		}
	}

	return &proximityService{
		listingRepo:     params.ListingRepo,
		geocoder:        params.Geocoder,
		defaultRadiusKm: math.Min(defaultRadius, maxRadius),
		maxRadiusKm:     maxRadius,
		defaultLimit:    defaultLimit,
		maxLimit:        maxLimit,
		logger:          params.Logger,
	}
}

func (srv *proximityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindNear returns listings within RadiusKm of the point. Candidates come from
// the bounding boxes of the circle; only those at a haversine distance of at
// most RadiusKm are kept, ordered by distance and then by listing ID.
func (srv *proximityService) FindNear(ctx context.Context, query *usecase.NearQuery) (*usecase.NearResult, error) {
	center := geo.Coordinates{Latitude: query.Latitude, Longitude: query.Longitude}
	if !center.Valid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("latitude must be within [-90, 90] and longitude within [-180, 180]")
	}
	if err := srv.validateRadius(query.RadiusKm); err != nil {
		return nil, err
	}

	limit, offset, err := normalizePage(query.Limit, query.Offset, srv.defaultLimit, srv.maxLimit)
	if err != nil {
		return nil, err
	}

	matches, err := srv.nearby(ctx, center, query.RadiusKm, query.Filter)
	if err != nil {
		return nil, err
	}

	return &usecase.NearResult{
		Items:    page(matches, limit, offset),
		Total:    len(matches),
		Center:   center,
		RadiusKm: query.RadiusKm,
		Limit:    limit,
		Offset:   offset,
	}, nil
}

// Search resolves free text to a point and runs FindNear around it. An address
// without a match gives an empty result rather than an error.
func (srv *proximityService) Search(ctx context.Context, query *usecase.SearchQuery) (*usecase.SearchResult, error) {
	text := strings.TrimSpace(query.Text)
	if text == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("search text must not be empty")
	}

	radius := query.RadiusKm
	if radius == 0 {
		radius = srv.defaultRadiusKm
	}
	if err := srv.validateRadius(radius); err != nil {
		return nil, err
	}

	limit, offset, err := normalizePage(query.Limit, query.Offset, srv.defaultLimit, srv.maxLimit)
	if err != nil {
		return nil, err
	}

	result := &usecase.SearchResult{
		Query:    text,
		RadiusKm: radius,
		Items:    []*entity.NearbyListing{},
		Limit:    limit,
		Offset:   offset,
	}

	resolved, err := srv.geocoder.Resolve(ctx, text)
	if err != nil {
		if errors.Is(err, service.ErrGeocodeNoMatch) {
			srv.log(ctx).Info("Search address did not resolve", slog.String("query", text))

			return result, nil
		}
		if errors.Is(err, service.ErrGeocodeInvalidInput) {
			return nil, domainerrors.ErrInvalidInput.WithDetails("search text must not be empty")
		}
		srv.log(ctx).Warn("Search geocoding failed", slog.String("query", text), slog.Any("error", err))

		return nil, domainerrors.ErrGeocodingUnavailable.WrapMessage("failed to resolve search address")
	}

	center := resolved.Coordinates
	matches, err := srv.nearby(ctx, center, radius, query.Filter)
	if err != nil {
		return nil, err
	}

	result.ResolvedAddress = resolved.DisplayAddress
	result.Center = &center
	result.Items = page(matches, limit, offset)
	result.Total = len(matches)

	return result, nil
}

func (srv *proximityService) validateRadius(radiusKm float64) error {
	if math.IsNaN(radiusKm) || radiusKm <= 0 || radiusKm > srv.maxRadiusKm {
		return domainerrors.ErrInvalidInput.WithDetails("radius must be greater than 0 and at most the search limit")
	}

	return nil
}

// nearby returns every match ordered by (distance, listing ID).
func (srv *proximityService) nearby(ctx context.Context, center geo.Coordinates, radiusKm float64, filter repository.ListingFilter) ([]*entity.NearbyListing, error) {
	filter.Keyword = strings.TrimSpace(filter.Keyword)
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	bounds := geo.BoundingBoxes(center, radiusKm)

	candidates, err := srv.listingRepo.FindInBounds(ctx, bounds, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find listings in bounds")
	}

	matches := make([]*entity.NearbyListing, 0, len(candidates))
	for _, listing := range candidates {
		if !listing.HasCoordinates() {
			continue
		}
		d := geo.DistanceKm(center, *listing.Coordinates)
		if d > radiusKm {
			continue
		}
		matches = append(matches, &entity.NearbyListing{Listing: listing, DistanceKm: d})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].DistanceKm != matches[j].DistanceKm {
			return matches[i].DistanceKm < matches[j].DistanceKm
		}

		return bytes.Compare(matches[i].Listing.ID[:], matches[j].Listing.ID[:]) < 0
	})

	srv.log(ctx).Debug("Proximity query",
		slog.Int("boxes", len(bounds)),
		slog.Int("candidates", len(candidates)),
		slog.Int("matches", len(matches)),
		slog.Float64("radiusKm", radiusKm),
	)

	return matches, nil
}

func page(matches []*entity.NearbyListing, limit, offset int) []*entity.NearbyListing {
	if offset >= len(matches) {
		return []*entity.NearbyListing{}
	}
	end := min(offset+limit, len(matches))

	return matches[offset:end]
}
