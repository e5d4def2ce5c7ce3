package handler

import (
	"strconv"
	"strings"

	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// pathID parses a UUID path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrInvalidInput.WithDetails("invalid " + name))
	}

	return id, nil
}

// queryFloat parses an optional float query parameter; nil when absent.
func queryFloat(c echo.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidInput.WithDetails(name + " must be a number"))
	}

	return &v, nil
}

// pageQuery reads limit and offset; zero values select the service defaults.
func pageQuery(c echo.Context) (limit, offset int, err error) {
	if err := echo.QueryParamsBinder(c).
		Int("limit", &limit).
		Int("offset", &offset).
		BindError(); err != nil {
		return 0, 0, bindingError(err)
	}

	return limit, offset, nil
}

// listingFilter reads the keyword and price range shared by listing queries.
func listingFilter(c echo.Context, keywordParam string) (repository.ListingFilter, error) {
	filter := repository.ListingFilter{Keyword: strings.TrimSpace(c.QueryParam(keywordParam))}

	var err error
	if filter.MinPrice, err = queryFloat(c, "min_price"); err != nil {
		return filter, err
	}
	if filter.MaxPrice, err = queryFloat(c, "max_price"); err != nil {
		return filter, err
	}

	return filter, nil
}

func bindingError(err error) error {
	var bindErr *echo.BindingError
	if errors.As(err, &bindErr) {
		return errors.WithStack(domainerrors.ErrInvalidInput.WithDetails(bindErr.Field + " is malformed"))
	}

	return errors.WithStack(domainerrors.ErrInvalidInput.WithDetails("malformed request"))
}

// bindAndValidate binds the request body into req and validates it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.WithStack(domainerrors.ErrInvalidInput.WithDetails("malformed request body"))
	}

	return errors.WithStack(c.Validate(req))
}
