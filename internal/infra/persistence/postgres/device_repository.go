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

// deviceRepository implements the domain.DeviceRepository interface using GORM.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

// FindByID retrieves a single device by its unique ID.
func (repo *deviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	var deviceM model.DeviceModel
	err := repo.db.WithContext(ctx).First(&deviceM, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by id")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindAll returns the whole catalog ordered by brand then model name.
func (repo *deviceRepository) FindAll(ctx context.Context) ([]*entity.Device, error) {
	var deviceMs []model.DeviceModel
	err := repo.db.WithContext(ctx).
		Order("brand, model_name").
		Find(&deviceMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	devices := make([]*entity.Device, 0, len(deviceMs))
	for i := range deviceMs {
		devices = append(devices, toDeviceDomain(&deviceMs[i]))
	}

	return devices, nil
}

// FindByBrandAndModel looks up a device by exact brand (case-insensitive) and
// model-name substring (case-insensitive). Several rows can match a loose
// fragment; the catalog's (brand, model_name) ordering decides which wins.
func (repo *deviceRepository) FindByBrandAndModel(ctx context.Context, brand, modelFragment string) (*entity.Device, error) {
	var deviceM model.DeviceModel
	err := repo.db.WithContext(ctx).
		Where("LOWER(brand) = LOWER(?)", brand).
		Where("model_name ILIKE ?", "%"+modelFragment+"%").
		Order("brand, model_name").
		First(&deviceM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by brand and model")
	}

	return toDeviceDomain(&deviceM), nil
}

// Count returns the total number of catalog devices.
func (repo *deviceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.DeviceModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count devices")
	}

	return count, nil
}

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:             data.ID,
		Brand:          data.Brand,
		ModelName:      data.ModelName,
		DeviceType:     entity.DeviceType(data.DeviceType),
		GoldMg:         data.GoldMg,
		CopperMg:       data.CopperMg,
		SilverMg:       data.SilverMg,
		EstimatedValue: data.EstimatedValue,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
