package imagehandler

import (
	"context"

	"github.com/eappleew/Chat-Cheappt/internal/domain/genimage"
	genimageresponses "github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/responses/genimage"
	"github.com/eappleew/Chat-Cheappt/internal/utils/platformerrors"
)

// ImageHandler handles generated-image listing
type ImageHandler struct {
	genImageService *genimage.Service
}

// NewImageHandler creates a new image handler
func NewImageHandler(genImageService *genimage.Service) *ImageHandler {
	return &ImageHandler{genImageService: genImageService}
}

// ListImages returns a user's generated images, newest first.
func (h *ImageHandler) ListImages(ctx context.Context, userID uint) ([]genimageresponses.GeneratedImageResponse, error) {
	images, err := h.genImageService.ListByUser(ctx, userID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to list generated images")
	}
	return genimageresponses.NewGeneratedImageListResponse(images), nil
}
