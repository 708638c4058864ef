// Package genimage provides the generated-image domain model.
package genimage

import (
	"context"
	"time"
)

// GeneratedImage records one image produced by the image-generation model.
// Rows are never updated or deleted.
type GeneratedImage struct {
	ID        uint
	UserID    uint
	Prompt    string
	FilePath  string
	CreatedAt time.Time
}

// Repository defines storage operations for generated images.
type Repository interface {
	Create(ctx context.Context, img *GeneratedImage) error
	ListByUser(ctx context.Context, userID uint) ([]*GeneratedImage, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
}

// Service wraps generated-image persistence.
type Service struct {
	repo Repository
}

// NewService constructs a Service with required dependencies.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record stores a generated-image row.
func (s *Service) Record(ctx context.Context, img *GeneratedImage) error {
	return s.repo.Create(ctx, img)
}

// ListByUser returns a user's generated images, newest first.
func (s *Service) ListByUser(ctx context.Context, userID uint) ([]*GeneratedImage, error) {
	return s.repo.ListByUser(ctx, userID)
}

// CountByUser returns how many images a user has generated.
func (s *Service) CountByUser(ctx context.Context, userID uint) (int64, error) {
	return s.repo.CountByUser(ctx, userID)
}
