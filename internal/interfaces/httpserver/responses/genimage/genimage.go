package genimageresponses

import (
	"time"

	"github.com/eappleew/Chat-Cheappt/internal/domain/genimage"
)

// GeneratedImageResponse is one generated-image row.
type GeneratedImageResponse struct {
	ID        uint      `json:"id"`
	Prompt    string    `json:"prompt"`
	FilePath  string    `json:"file_path"`
	CreatedAt time.Time `json:"created_at"`
}

// NewGeneratedImageListResponse converts domain records newest first.
func NewGeneratedImageListResponse(images []*genimage.GeneratedImage) []GeneratedImageResponse {
	data := make([]GeneratedImageResponse, 0, len(images))
	for _, img := range images {
		data = append(data, GeneratedImageResponse{
			ID:        img.ID,
			Prompt:    img.Prompt,
			FilePath:  img.FilePath,
			CreatedAt: img.CreatedAt,
		})
	}
	return data
}
