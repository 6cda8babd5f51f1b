// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading the recycler profile.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Profile").
		First(&userM, "id = ?", id).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		// Otherwise, return the original database error.
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address, preloading the recycler profile.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Profile").
		First(&userM, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity together with its recycler profile.
// GORM's Create with associations inserts into users and recycler_profiles in
// one statement batch; run it inside TransactionManager.Execute together with
// the credential insert so an account never exists without a profile.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	// Map the pure domain entity to a GORM persistence model.
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid foreign key reference")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	if user.Profile != nil && userM.Profile != nil {
		user.Profile.UserID = userM.Profile.UserID
		user.Profile.UpdatedAt = userM.Profile.UpdatedAt
	}

	return nil
}

// CountProfiles returns the total number of recycler profiles.
func (repo *userRepository) CountProfiles(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.RecyclerProfileModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count recycler profiles")
	}

	return count, nil
}

// ApplyAccrual atomically applies one recycle accrual to a profile. The
// increments run inside the database (SET points = points + ?) so concurrent
// recycles on the same profile serialize on the row instead of losing updates.
func (repo *userRepository) ApplyAccrual(ctx context.Context, userID uuid.UUID, accrual entity.Accrual) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RecyclerProfileModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"points":         gorm.Expr("points + ?", accrual.Points),
			"total_recycled": gorm.Expr("total_recycled + 1"),
			"co2_saved_kg":   gorm.Expr("co2_saved_kg + ?", accrual.CO2SavedKg),
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.NewDatabaseExecuteError(result.Error, "accrual violates profile constraints")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to apply accrual")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// Rank returns the 1-based standing for a points tally: one plus the number
// of profiles with strictly greater points. Ties share the same rank.
func (repo *userRepository) Rank(ctx context.Context, points int) (int, error) {
	var ahead int64
	err := repo.db.WithContext(ctx).
		Model(&model.RecyclerProfileModel{}).
		Where("points > ?", points).
		Count(&ahead).Error

	if err != nil {
		return 0, errors.Wrap(err, "failed to compute rank")
	}

	return int(ahead) + 1, nil
}

// Leaderboard returns the top limit users ordered by profile points descending.
func (repo *userRepository) Leaderboard(ctx context.Context, limit int) ([]*entity.User, error) {
	var userMs []model.UserModel
	err := repo.db.WithContext(ctx).
		Joins("Profile").
		Order(`"Profile"."points" DESC`).
		Limit(limit).
		Find(&userMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to load leaderboard")
	}

	users := make([]*entity.User, 0, len(userMs))
	for i := range userMs {
		users = append(users, toUserDomain(&userMs[i]))
	}

	return users, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		Email:     data.Email,
		Name:      data.Name,
		Profile:   toProfileDomain(data.Profile),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:      data.ID,
		Email:   data.Email,
		Name:    data.Name,
		Profile: fromProfileDomain(data.Profile),
	}
}

// toProfileDomain converts a GORM RecyclerProfileModel to a domain RecyclerProfile entity.
func toProfileDomain(data *model.RecyclerProfileModel) *entity.RecyclerProfile {
	if data == nil {
		return nil
	}

	return &entity.RecyclerProfile{
		UserID:        data.UserID,
		Points:        data.Points,
		TotalRecycled: data.TotalRecycled,
		CO2SavedKg:    data.CO2SavedKg,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromProfileDomain converts a domain RecyclerProfile entity to a GORM RecyclerProfileModel.
func fromProfileDomain(data *entity.RecyclerProfile) *model.RecyclerProfileModel {
	if data == nil {
		return nil
	}

	return &model.RecyclerProfileModel{
		UserID:        data.UserID,
		Points:        data.Points,
		TotalRecycled: data.TotalRecycled,
		CO2SavedKg:    data.CO2SavedKg,
		UpdatedAt:     data.UpdatedAt,
	}
}
