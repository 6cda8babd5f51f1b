package postgres

import (
	"context"

	"ecycle/internal/domain/entity"
	"ecycle/internal/domain/repository"
	"ecycle/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// componentRepository implements the domain.ComponentRepository interface using GORM.
type componentRepository struct {
	db *gorm.DB
}

// NewComponentRepository is the constructor for componentRepository.
func NewComponentRepository(db *gorm.DB) repository.ComponentRepository {
	return &componentRepository{db: db}
}

// FindByID retrieves a single component by its unique ID.
func (repo *componentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ComponentInfo, error) {
	var componentM model.ComponentInfoModel
	err := repo.db.WithContext(ctx).First(&componentM, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrComponentNotFound
		}

		return nil, errors.Wrap(err, "failed to find component by id")
	}

	return toComponentDomain(&componentM), nil
}

// FindAll returns every component ordered by component name.
func (repo *componentRepository) FindAll(ctx context.Context) ([]*entity.ComponentInfo, error) {
	var componentMs []model.ComponentInfoModel
	err := repo.db.WithContext(ctx).
		Order("component").
		Find(&componentMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list components")
	}

	components := make([]*entity.ComponentInfo, 0, len(componentMs))
	for i := range componentMs {
		components = append(components, toComponentDomain(&componentMs[i]))
	}

	return components, nil
}

// toComponentDomain converts a GORM ComponentInfoModel to a domain ComponentInfo entity.
func toComponentDomain(data *model.ComponentInfoModel) *entity.ComponentInfo {
	if data == nil {
		return nil
	}

	icon := data.Icon
	if icon == "" {
		icon = entity.DefaultComponentIcon
	}

	return &entity.ComponentInfo{
		ID:                  data.ID,
		Component:           data.Component,
		FoundIn:             data.FoundIn,
		HealthEffect:        data.HealthEffect,
		EnvironmentalEffect: data.EnvironmentalEffect,
		Icon:                icon,
		CreatedAt:           data.CreatedAt,
	}
}
