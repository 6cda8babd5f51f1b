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

// facilityRepository implements the domain.FacilityRepository interface using GORM.
type facilityRepository struct {
	db *gorm.DB
}

// NewFacilityRepository is the constructor for facilityRepository.
func NewFacilityRepository(db *gorm.DB) repository.FacilityRepository {
	return &facilityRepository{db: db}
}

// FindByID retrieves a single facility by its unique ID.
func (repo *facilityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Facility, error) {
	var facilityM model.FacilityModel
	err := repo.db.WithContext(ctx).First(&facilityM, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFacilityNotFound
		}

		return nil, errors.Wrap(err, "failed to find facility by id")
	}

	return toFacilityDomain(&facilityM), nil
}

// Search returns all facilities matching the filter, ordered by city then name.
// The filter's predicates translate to ILIKE substring matches; an unset
// predicate adds no condition, so the zero filter returns the whole catalog.
func (repo *facilityRepository) Search(ctx context.Context, filter repository.FacilityFilter) ([]*entity.Facility, error) {
	tx := repo.db.WithContext(ctx).Model(&model.FacilityModel{})

	switch filter.Mode {
	case repository.FacilitySearchCity:
		if filter.Query != "" {
			tx = tx.Where("city ILIKE ?", "%"+filter.Query+"%")
		}
	case repository.FacilitySearchPincode:
		if filter.Query != "" {
			tx = tx.Where("pincode ILIKE ?", "%"+filter.Query+"%")
		}
	}

	if filter.City != "" {
		tx = tx.Where("city ILIKE ?", "%"+filter.City+"%")
	}
	if filter.Pincode != "" {
		tx = tx.Where("pincode ILIKE ?", "%"+filter.Pincode+"%")
	}

	var facilityMs []model.FacilityModel
	if err := tx.Order("city, name").Find(&facilityMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search facilities")
	}

	facilities := make([]*entity.Facility, 0, len(facilityMs))
	for i := range facilityMs {
		facilities = append(facilities, toFacilityDomain(&facilityMs[i]))
	}

	return facilities, nil
}

// Count returns the total number of facilities.
func (repo *facilityRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.FacilityModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count facilities")
	}

	return count, nil
}

// toFacilityDomain converts a GORM FacilityModel to a domain Facility entity.
func toFacilityDomain(data *model.FacilityModel) *entity.Facility {
	if data == nil {
		return nil
	}

	return &entity.Facility{
		ID:            data.ID,
		Name:          data.Name,
		Address:       data.Address,
		City:          data.City,
		Pincode:       data.Pincode,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		Contact:       data.Contact,
		AcceptedItems: data.AcceptedItems,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
