package impl

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"ecycle/internal/domain/entity"
	"ecycle/internal/domain/repository"
	"ecycle/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// In-memory fakes for the repository and service interfaces. They implement
// the same ordering and not-found semantics as the SQL implementations so the
// services can be tested without a database.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) (err error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.Profile != nil {
		user.Profile.UserID = user.ID
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = user

	return nil
}

func (r *fakeUserRepo) CountProfiles(_ context.Context) (int64, error) {
	var count int64
	for _, user := range r.users {
		if user.Profile != nil {
			count++
		}
	}

	return count, nil
}

func (r *fakeUserRepo) ApplyAccrual(_ context.Context, userID uuid.UUID, accrual entity.Accrual) error {
	user, ok := r.users[userID]
	if !ok || user.Profile == nil {
		return repository.ErrProfileNotFound
	}

	user.Profile.Points += accrual.Points
	user.Profile.TotalRecycled++
	user.Profile.CO2SavedKg = user.Profile.CO2SavedKg.Add(accrual.CO2SavedKg)

	return nil
}

func (r *fakeUserRepo) Rank(_ context.Context, points int) (int, error) {
	ahead := 0
	for _, user := range r.users {
		if user.Profile != nil && user.Profile.Points > points {
			ahead++
		}
	}

	return ahead + 1, nil
}

func (r *fakeUserRepo) Leaderboard(_ context.Context, limit int) ([]*entity.User, error) {
	var withProfile []*entity.User
	for _, user := range r.users {
		if user.Profile != nil {
			withProfile = append(withProfile, user)
		}
	}
	sort.Slice(withProfile, func(i, j int) bool {
		return withProfile[i].Profile.Points > withProfile[j].Profile.Points
	})
	if len(withProfile) > limit {
		withProfile = withProfile[:limit]
	}

	return withProfile, nil
}

type fakeAuthRepo struct {
	auths []*entity.Authentication
}

func (r *fakeAuthRepo) CreateAuthentication(_ context.Context, auth *entity.Authentication) error {
	if auth.ID == uuid.Nil {
		auth.ID = uuid.New()
	}
	auth.CreatedAt = time.Now()
	r.auths = append(r.auths, auth)

	return nil
}

func (r *fakeAuthRepo) FindAuthentication(_ context.Context, provider, providerUserID string) (*entity.Authentication, error) {
	for _, auth := range r.auths {
		if auth.Provider == provider && auth.ProviderUserID == providerUserID {
			return auth, nil
		}
	}

	return nil, repository.ErrAuthNotFound
}

type fakeDeviceRepo struct {
	devices []*entity.Device
}

func (r *fakeDeviceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Device, error) {
	for _, device := range r.devices {
		if device.ID == id {
			return device, nil
		}
	}

	return nil, repository.ErrDeviceNotFound
}

func (r *fakeDeviceRepo) FindAll(_ context.Context) ([]*entity.Device, error) {
	ordered := make([]*entity.Device, len(r.devices))
	copy(ordered, r.devices)
	sortDevices(ordered)

	return ordered, nil
}

func (r *fakeDeviceRepo) FindByBrandAndModel(_ context.Context, brand, modelFragment string) (*entity.Device, error) {
	var matches []*entity.Device
	for _, device := range r.devices {
		brandEq := strings.EqualFold(device.Brand, brand)
		modelHit := strings.Contains(strings.ToLower(device.ModelName), strings.ToLower(modelFragment))
		if brandEq && modelHit {
			matches = append(matches, device)
		}
	}
	if len(matches) == 0 {
		return nil, repository.ErrDeviceNotFound
	}
	sortDevices(matches)

	return matches[0], nil
}

func (r *fakeDeviceRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.devices)), nil
}

func sortDevices(devices []*entity.Device) {
	sort.Slice(devices, func(i, j int) bool {
		if devices[i].Brand != devices[j].Brand {
			return devices[i].Brand < devices[j].Brand
		}

		return devices[i].ModelName < devices[j].ModelName
	})
}

type fakeEventRepo struct {
	events []*entity.RecycleEvent
}

func (r *fakeEventRepo) Create(_ context.Context, event *entity.RecycleEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	event.CreatedAt = time.Now()
	r.events = append(r.events, event)

	return nil
}

func (r *fakeEventRepo) FindByUser(_ context.Context, userID uuid.UUID, limit int) ([]*entity.RecycleEvent, error) {
	var out []*entity.RecycleEvent
	for i := len(r.events) - 1; i >= 0 && len(out) < limit; i-- {
		if r.events[i].UserID == userID {
			out = append(out, r.events[i])
		}
	}

	return out, nil
}

type fakeFacilityRepo struct {
	facilities []*entity.Facility
}

func (r *fakeFacilityRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Facility, error) {
	for _, facility := range r.facilities {
		if facility.ID == id {
			return facility, nil
		}
	}

	return nil, repository.ErrFacilityNotFound
}

func (r *fakeFacilityRepo) Search(_ context.Context, filter repository.FacilityFilter) ([]*entity.Facility, error) {
	var out []*entity.Facility
	for _, facility := range r.facilities {
		if filter.Matches(facility) {
			out = append(out, facility)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].City != out[j].City {
			return out[i].City < out[j].City
		}

		return out[i].Name < out[j].Name
	})

	return out, nil
}

func (r *fakeFacilityRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.facilities)), nil
}

type fakeComponentRepo struct {
	components []*entity.ComponentInfo
}

func (r *fakeComponentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.ComponentInfo, error) {
	for _, component := range r.components {
		if component.ID == id {
			return component, nil
		}
	}

	return nil, repository.ErrComponentNotFound
}

func (r *fakeComponentRepo) FindAll(_ context.Context) ([]*entity.ComponentInfo, error) {
	ordered := make([]*entity.ComponentInfo, len(r.components))
	copy(ordered, r.components)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Component < ordered[j].Component })

	return ordered, nil
}

// fakeTxManager hands every callback a factory over the same in-memory repos.
// There is no rollback; tests assert on the error paths before state checks.
type fakeTxManager struct {
	userRepo   *fakeUserRepo
	authRepo   *fakeAuthRepo
	deviceRepo *fakeDeviceRepo
	eventRepo  *fakeEventRepo
}

func (tm *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(tm)
}

func (tm *fakeTxManager) UserRepo() repository.UserRepository               { return tm.userRepo }
func (tm *fakeTxManager) AuthRepo() repository.AuthRepository               { return tm.authRepo }
func (tm *fakeTxManager) DeviceRepo() repository.DeviceRepository           { return tm.deviceRepo }
func (tm *fakeTxManager) RecycleEventRepo() repository.RecycleEventRepository { return tm.eventRepo }

// fakeHasher records plaintexts with a reversible prefix; strength checks
// enforce an 8-character minimum like the real bcrypt hasher's default.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Check(password, hash string) bool { return hash == "hashed:"+password }

func (fakeHasher) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password too short")
	}

	return nil
}

// fakeTokenService issues inspectable tokens of the form "token:<userID>".
type fakeTokenService struct{}

func (fakeTokenService) GenerateSessionToken(userID uuid.UUID, _ string) (string, error) {
	return "token:" + userID.String(), nil
}

func (fakeTokenService) ValidateSessionToken(tokenString string) (*service.SessionClaims, error) {
	raw, ok := strings.CutPrefix(tokenString, "token:")
	if !ok {
		return nil, fmt.Errorf("malformed token")
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("malformed token subject")
	}

	return &service.SessionClaims{UserID: userID, RegisteredClaims: jwt.RegisteredClaims{}}, nil
}

func (fakeTokenService) SessionDuration() time.Duration { return 24 * time.Hour }

// fakeQRService returns a recognizable payload-dependent byte slice.
type fakeQRService struct{}

func (fakeQRService) GeneratePNG(payload string) ([]byte, error) {
	return []byte("png:" + payload), nil
}
