// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByUID retrieves a single user by the identity assigned by the auth service.
	// Returns ErrUserNotFound when no profile exists yet.
	FindByUID(ctx context.Context, uid string) (*entity.User, error)

	// FindByUIDs retrieves the users that exist among uids, keyed by UID.
	// Unknown UIDs are simply absent from the result.
	FindByUIDs(ctx context.Context, uids []string) (map[string]*entity.User, error)

	// ListByRole retrieves every user holding role, ordered by name.
	ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)

	// Create persists a new profile. CreatedAt is assigned by the storage backend.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies the name and address of an existing profile.
	Update(ctx context.Context, user *entity.User) error

	// WatchUsers streams every user holding role.
	WatchUsers(ctx context.Context, role entity.Role, listener Listener[[]*entity.User]) (Unsubscribe, error)
}
