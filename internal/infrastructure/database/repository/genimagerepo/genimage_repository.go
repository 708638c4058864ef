package genimagerepo

import (
	"context"

	"gorm.io/gorm"

	"github.com/eappleew/Chat-Cheappt/internal/domain/genimage"
	"github.com/eappleew/Chat-Cheappt/internal/infrastructure/database/dbschema"
	"github.com/eappleew/Chat-Cheappt/internal/utils/platformerrors"
)

type GenImageGormRepository struct {
	db *gorm.DB
}

var _ genimage.Repository = (*GenImageGormRepository)(nil)

func NewGenImageGormRepository(db *gorm.DB) genimage.Repository {
	return &GenImageGormRepository{db: db}
}

func (repo *GenImageGormRepository) Create(ctx context.Context, img *genimage.GeneratedImage) error {
	entity := dbschema.NewSchemaGeneratedImage(img)
	if err := repo.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to record generated image",
			err,
			"4d7b9f2a-6e13-48c5-b8a0-1f3c5e7d9b24",
		)
	}

	img.ID = entity.ID
	img.CreatedAt = entity.CreatedAt
	return nil
}

func (repo *GenImageGormRepository) ListByUser(ctx context.Context, userID uint) ([]*genimage.GeneratedImage, error) {
	var entities []dbschema.GeneratedImage
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entities).
		Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list generated images",
			err,
			"0c8e6a4f-5b92-47d1-a6e3-9d2f4b8c0e57",
		)
	}

	images := make([]*genimage.GeneratedImage, 0, len(entities))
	for i := range entities {
		images = append(images, entities[i].EtoD())
	}
	return images, nil
}

func (repo *GenImageGormRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&dbschema.GeneratedImage{}).
		Where("user_id = ?", userID).
		Count(&count).
		Error
	if err != nil {
		return 0, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to count generated images",
			err,
			"7f1d3b5e-8a40-4c92-b7d6-2e9a5c0f8b31",
		)
	}
	return count, nil
}
