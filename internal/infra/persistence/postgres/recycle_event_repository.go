package postgres

import (
	"context"

	"ecycle/internal/domain/entity"
	domainerrors "ecycle/internal/domain/errors"
	"ecycle/internal/domain/repository"
	"ecycle/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recycleEventRepository implements the domain.RecycleEventRepository interface using GORM.
type recycleEventRepository struct {
	db *gorm.DB
}

// NewRecycleEventRepository is the constructor for recycleEventRepository.
func NewRecycleEventRepository(db *gorm.DB) repository.RecycleEventRepository {
	return &recycleEventRepository{db: db}
}

// Create appends one recycle event. Events are never updated or deleted.
func (repo *recycleEventRepository) Create(ctx context.Context, event *entity.RecycleEvent) error {
	eventM := fromRecycleEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "recycle event references unknown user or device")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record recycle event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

// FindByUser returns a user's events, most recent first, capped at limit.
func (repo *recycleEventRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.RecycleEvent, error) {
	var eventMs []model.RecycleEventModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&eventMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list recycle events")
	}

	events := make([]*entity.RecycleEvent, 0, len(eventMs))
	for i := range eventMs {
		events = append(events, toRecycleEventDomain(&eventMs[i]))
	}

	return events, nil
}

// toRecycleEventDomain converts a GORM RecycleEventModel to a domain RecycleEvent entity.
func toRecycleEventDomain(data *model.RecycleEventModel) *entity.RecycleEvent {
	if data == nil {
		return nil
	}

	return &entity.RecycleEvent{
		ID:           data.ID,
		UserID:       data.UserID,
		DeviceID:     data.DeviceID,
		PointsEarned: data.PointsEarned,
		CO2SavedKg:   data.CO2SavedKg,
		CreatedAt:    data.CreatedAt,
	}
}

// fromRecycleEventDomain converts a domain RecycleEvent entity to a GORM RecycleEventModel.
func fromRecycleEventDomain(data *entity.RecycleEvent) *model.RecycleEventModel {
	if data == nil {
		return nil
	}

	return &model.RecycleEventModel{
		ID:           data.ID,
		UserID:       data.UserID,
		DeviceID:     data.DeviceID,
		PointsEarned: data.PointsEarned,
		CO2SavedKg:   data.CO2SavedKg,
	}
}
