package firestore

import (
	"context"
	"sort"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

type userRepository struct {
	client *firestore.Client
}

// NewUserRepository creates a user repository on the users collection. The
// document ID is the user's UID.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) users() *firestore.CollectionRef {
	return r.client.Collection(constants.CollectionUsers)
}

func (r *userRepository) FindByUID(ctx context.Context, uid string) (*entity.User, error) {
	snap, err := r.users().Doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return decodeUser(snap)
}

func (r *userRepository) FindByUIDs(ctx context.Context, uids []string) (map[string]*entity.User, error) {
	users := make(map[string]*entity.User, len(uids))
	if len(uids) == 0 {
		return users, nil
	}

	refs := make([]*firestore.DocumentRef, 0, len(uids))
	for _, uid := range uids {
		refs = append(refs, r.users().Doc(uid))
	}

	snaps, err := r.client.GetAll(ctx, refs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users")
	}

	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}
		user, err := decodeUser(snap)
		if err != nil {
			return nil, err
		}
		users[user.UID] = user
	}

	return users, nil
}

func (r *userRepository) ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	snaps, err := r.byRole(role).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return decodeUsers(snaps)
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	result, err := r.users().Doc(user.UID).Set(ctx, newUserDocument(user))
	if err != nil {
		return errors.Wrap(err, "failed to create user")
	}
	user.CreatedAt = result.UpdateTime

	return nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	_, err := r.users().Doc(user.UID).Update(ctx, []firestore.Update{
		{Path: fieldName, Value: user.Name},
		{Path: fieldAddress, Value: user.Address},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to update user")
	}

	return nil
}

func (r *userRepository) WatchUsers(ctx context.Context, role entity.Role, listener repository.Listener[[]*entity.User]) (repository.Unsubscribe, error) {
	return watchQuery(ctx, r.byRole(role), decodeUsers, listener), nil
}

func (r *userRepository) byRole(role entity.Role) firestore.Query {
	return r.users().Where(fieldRole, "==", role.String())
}

func decodeUser(snap *firestore.DocumentSnapshot) (*entity.User, error) {
	var doc userDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode user %s", snap.Ref.ID)
	}

	return doc.toEntity(snap.Ref.ID), nil
}

// decodeUsers returns the users sorted by name.
func decodeUsers(snaps []*firestore.DocumentSnapshot) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(snaps))
	for _, snap := range snaps {
		user, err := decodeUser(snap)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	sort.SliceStable(users, func(i, j int) bool { return users[i].Name < users[j].Name })

	return users, nil
}
