package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"marketplace/internal/delivery/http/middleware"
	"marketplace/internal/delivery/http/response"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// imageFormField is the multipart field carrying the upload.
const imageFormField = "image"

// ImageHandlerParams holds dependencies for ImageHandler, injected by Fx.
type ImageHandlerParams struct {
	fx.In

	ImageUC usecase.ImageUsecase
	Logger  *slog.Logger
}

// ImageHandler serves listing image uploads and downloads.
type ImageHandler struct {
	imageUC usecase.ImageUsecase
	logger  *slog.Logger
}

// NewImageHandler is the constructor for ImageHandler.
func NewImageHandler(params ImageHandlerParams) *ImageHandler {
	return &ImageHandler{
		imageUC: params.ImageUC,
		logger:  params.Logger,
	}
}

// Upload attaches the multipart "image" file to a listing owned by the caller.
func (h *ImageHandler) Upload(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	listingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile(imageFormField)
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("multipart field \"image\" is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded image")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded image")
	}

	image, err := h.imageUC.AttachImage(c.Request().Context(), &usecase.AttachImageInput{
		ListingID:   listingID,
		RequesterID: userID,
		Filename:    fileHeader.Filename,
		Data:        data,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, image, "Image attached")
}

// Show streams the stored image bytes.
func (h *ImageHandler) Show(c echo.Context) error {
	listingID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	imageID, err := pathID(c, "imageId")
	if err != nil {
		return err
	}

	content, err := h.imageUC.OpenImage(c.Request().Context(), listingID, imageID)
	if err != nil {
		return errors.WithStack(err)
	}
	defer content.Body.Close()

	header := c.Response().Header()
	header.Set(echo.HeaderContentLength, strconv.FormatInt(content.Image.SizeBytes, 10))
	header.Set("Cache-Control", "public, max-age=86400, immutable")
	header.Set("X-Content-Type-Options", "nosniff")

	return c.Stream(http.StatusOK, content.Image.ContentType, content.Body)
}

// Delete removes an image from a listing owned by the caller.
func (h *ImageHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	listingID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	imageID, err := pathID(c, "imageId")
	if err != nil {
		return err
	}

	if err := h.imageUC.DeleteImage(c.Request().Context(), listingID, imageID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Image deleted")
}
