package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/http/middleware"
	"marketplace/internal/delivery/http/response"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/geo"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	ListingUC   usecase.ListingUsecase
	ProximityUC usecase.ProximityUsecase
	Logger      *slog.Logger
}

// ListingHandler serves listing CRUD and proximity search.
type ListingHandler struct {
	listingUC   usecase.ListingUsecase
	proximityUC usecase.ProximityUsecase
	logger      *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler.
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{
		listingUC:   params.ListingUC,
		proximityUC: params.ProximityUC,
		logger:      params.Logger,
	}
}

// CreateListingRequest is the body of POST /listings. Coordinates are not accepted.
type CreateListingRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Description string   `json:"description" validate:"max=20000"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Location    string   `json:"location" validate:"max=500"`
}

// UpdateListingRequest is the body of PATCH /listings/:id. Absent fields are kept.
type UpdateListingRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=20000"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Location    *string  `json:"location" validate:"omitempty,max=500"`
}

// ProximityResponse is returned by /listings/near and /listings/search.
type ProximityResponse struct {
	Query           string                  `json:"query,omitempty"`
	ResolvedAddress string                  `json:"resolved_address,omitempty"`
	Center          *geo.Coordinates        `json:"center"`
	RadiusKm        float64                 `json:"radius_km"`
	Items           []*entity.NearbyListing `json:"items"`
	Total           int                     `json:"total"`
	Limit           int                     `json:"limit"`
	Offset          int                     `json:"offset"`
}

// Index lists listings newest first, optionally filtered by keyword and price.
func (h *ListingHandler) Index(c echo.Context) error {
	return h.list(c, nil)
}

// MyListings lists the authenticated user's listings.
func (h *ListingHandler) MyListings(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return h.list(c, &userID)
}

func (h *ListingHandler) list(c echo.Context, ownerID *uuid.UUID) error {
	filter, err := listingFilter(c, "q")
	if err != nil {
		return err
	}
	limit, offset, err := pageQuery(c)
	if err != nil {
		return err
	}

	page, err := h.listingUC.ListListings(c.Request().Context(), &usecase.ListListingsInput{
		OwnerID:  ownerID,
		Keyword:  filter.Keyword,
		MinPrice: filter.MinPrice,
		MaxPrice: filter.MaxPrice,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &response.Page{
		Items:  page.Items,
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}, "")
}

// Show returns a single listing with its images.
func (h *ListingHandler) Show(c echo.Context) error {
	listingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	listing, err := h.listingUC.GetListing(c.Request().Context(), listingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "")
}

// Create stores a new listing owned by the caller, resolving its location first.
func (h *ListingHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	var req CreateListingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	listing, err := h.listingUC.CreateListing(c.Request().Context(), &usecase.CreateListingInput{
		OwnerID:     userID,
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Location:    req.Location,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, listing, "Listing created")
}

// Update applies a partial update; only the owner may edit a listing.
func (h *ListingHandler) Update(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	listingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateListingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	listing, err := h.listingUC.UpdateListing(c.Request().Context(), &usecase.UpdateListingInput{
		ListingID:   listingID,
		RequesterID: userID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Location:    req.Location,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "Listing updated")
}

// Delete removes a listing and its images.
func (h *ListingHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	listingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.listingUC.DeleteListing(c.Request().Context(), listingID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Listing deleted")
}

// Near answers GET /listings/near?lat=&lng=&radius=.
func (h *ListingHandler) Near(c echo.Context) error {
	query := &usecase.NearQuery{}
	if err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &query.Latitude).
		MustFloat64("lng", &query.Longitude).
		Float64("radius", &query.RadiusKm).
		BindError(); err != nil {
		return bindingError(err)
	}

	var err error
	if query.Filter, err = listingFilter(c, "keyword"); err != nil {
		return err
	}
	if query.Limit, query.Offset, err = pageQuery(c); err != nil {
		return err
	}

	result, err := h.proximityUC.FindNear(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	center := result.Center

	return response.Success(c, http.StatusOK, &ProximityResponse{
		Center:   &center,
		RadiusKm: result.RadiusKm,
		Items:    result.Items,
		Total:    result.Total,
		Limit:    result.Limit,
		Offset:   result.Offset,
	}, "")
}

// Search answers GET /listings/search?q=&radius=. An address that does not
// resolve yields an empty result rather than an error.
func (h *ListingHandler) Search(c echo.Context) error {
	query := &usecase.SearchQuery{Text: c.QueryParam("q")}
	if err := echo.QueryParamsBinder(c).
		Float64("radius", &query.RadiusKm).
		BindError(); err != nil {
		return bindingError(err)
	}

	var err error
	if query.Filter, err = listingFilter(c, "keyword"); err != nil {
		return err
	}
	if query.Limit, query.Offset, err = pageQuery(c); err != nil {
		return err
	}

	result, err := h.proximityUC.Search(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	message := ""
	if result.Center == nil {
		message = "No place matched the query"
	}

	return response.Success(c, http.StatusOK, &ProximityResponse{
		Query:           result.Query,
		ResolvedAddress: result.ResolvedAddress,
		Center:          result.Center,
		RadiusKm:        result.RadiusKm,
		Items:           result.Items,
		Total:           result.Total,
		Limit:           result.Limit,
		Offset:          result.Offset,
	}, message)
}
