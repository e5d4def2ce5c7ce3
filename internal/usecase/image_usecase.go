package usecase

import (
	"context"
	"io"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// AttachImageInput is an uploaded image for a listing.
type AttachImageInput struct {
	ListingID   uuid.UUID
	RequesterID uuid.UUID
	Filename    string
	Data        []byte
}

// ImageContent streams a stored image. The caller closes Body.
type ImageContent struct {
	Image *entity.ListingImage
	Body  io.ReadCloser
}

// ImageUsecase manages the images attached to listings.
type ImageUsecase interface {
	AttachImage(ctx context.Context, input *AttachImageInput) (*entity.ListingImage, error)
	OpenImage(ctx context.Context, listingID, imageID uuid.UUID) (*ImageContent, error)
	DeleteImage(ctx context.Context, listingID, imageID, requesterID uuid.UUID) error
}
