package userrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/eappleew/Chat-Cheappt/internal/domain/user"
	"github.com/eappleew/Chat-Cheappt/internal/infrastructure/database/dbschema"
	"github.com/eappleew/Chat-Cheappt/internal/utils/platformerrors"
)

type UserGormRepository struct {
	db *gorm.DB
}

var _ user.Repository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *gorm.DB) user.Repository {
	return &UserGormRepository{db: db}
}

func (repo *UserGormRepository) Create(ctx context.Context, usr *user.User) error {
	entity := dbschema.NewSchemaUser(usr)
	if err := repo.db.WithContext(ctx).Create(entity).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeConflict,
				"email already registered",
				err,
				"7c5b1f0a-9d44-4f21-8c3e-2f6a1b8d0e47",
			)
		}
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create user",
			err,
			"f0c2a6d8-4e17-49b3-9c55-8a1d3b7e6f29",
		)
	}

	usr.ID = entity.ID
	usr.CreatedAt = entity.CreatedAt
	usr.UpdatedAt = entity.UpdatedAt
	return nil
}

func (repo *UserGormRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var entity dbschema.User
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&entity).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find user by email",
			err,
			"3d9e5f21-8b7a-4c06-b1e4-5a2c9d8f7e63",
		)
	}
	return entity.EtoD(), nil
}

func (repo *UserGormRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var entity dbschema.User
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entity).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find user by ID",
			err,
			"b8a4d2c6-1f93-47e5-a0d7-6c3e8b5f2a19",
		)
	}
	return entity.EtoD(), nil
}
