package postgres

import (
	"context"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"
	"storefront/internal/infra/realtime"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db  *gorm.DB
	hub *realtime.Hub
}

// NewUserRepository is the constructor for userRepository. Writes are
// announced on hub so that watchers re-read.
func NewUserRepository(db *gorm.DB, hub *realtime.Hub) repository.UserRepository {
	return &userRepository{
		db:  db,
		hub: hub,
	}
}

// FindByUID retrieves a user by the UID issued at sign-in.
func (repo *userRepository) FindByUID(ctx context.Context, uid string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("uid = ?", uid).
		First(&userM).Error; err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by UID")
	}

	return toUserDomain(&userM), nil
}

// FindByUIDs retrieves the users with the given UIDs, keyed by UID. Unknown
// UIDs are absent from the map.
func (repo *userRepository) FindByUIDs(ctx context.Context, uids []string) (map[string]*entity.User, error) {
	users := make(map[string]*entity.User, len(uids))
	if len(uids) == 0 {
		return users, nil
	}

	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).
		Where("uid IN ?", uids).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users by UIDs")
	}

	for _, userM := range userModels {
		users[userM.UID] = toUserDomain(userM)
	}

	return users, nil
}

// ListByRole retrieves every user with role, ordered by name.
func (repo *userRepository) ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("role = ?", role.String()).
		Order("name").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users by role")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Create stores the user's profile, replacing any earlier row for the UID.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "uid"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "phone", "address", "role"}),
		}).
		Create(userM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	repo.hub.Publish(constants.CollectionUsers)

	return nil
}

// Update changes the editable profile fields.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("uid = ?", user.UID).
		Updates(map[string]any{
			"name":    user.Name,
			"address": user.Address,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	repo.hub.Publish(constants.CollectionUsers)

	return nil
}

// WatchUsers streams the users with role.
func (repo *userRepository) WatchUsers(ctx context.Context, role entity.Role, listener repository.Listener[[]*entity.User]) (repository.Unsubscribe, error) {
	load := func(ctx context.Context) ([]*entity.User, error) {
		return repo.ListByRole(ctx, role)
	}

	return realtime.Watch(ctx, repo.hub, constants.CollectionUsers, load, listener), nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		UID:       data.UID,
		Name:      data.Name,
		Phone:     data.Phone,
		Address:   data.Address,
		Role:      entity.ParseRole(data.Role),
		CreatedAt: data.CreatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		UID:       data.UID,
		Name:      data.Name,
		Phone:     data.Phone,
		Address:   data.Address,
		Role:      data.Role.String(),
		CreatedAt: data.CreatedAt,
	}
}
