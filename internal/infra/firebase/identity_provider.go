package firebase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// phoneNamespace derives user IDs from phone numbers while Firebase is not configured.
var phoneNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("storefront:phone"))

// phoneUserClient is the part of auth.Client the provider needs.
type phoneUserClient interface {
	GetUserByPhoneNumber(ctx context.Context, phone string) (*auth.UserRecord, error)
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
}

type identityProvider struct {
	client        phoneUserClient
	notFound      func(error) bool
	alreadyExists func(error) bool
}

// NewIdentityProvider creates an IdentityProvider backed by Firebase Auth user records.
func NewIdentityProvider(app *firebase.App) (service.IdentityProvider, error) {
	if app == nil {
		return &identityProvider{}, nil
	}

	client, err := app.Auth(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return newIdentityProvider(client), nil
}

func newIdentityProvider(client phoneUserClient) *identityProvider {
	return &identityProvider{
		client:        client,
		notFound:      auth.IsUserNotFound,
		alreadyExists: auth.IsPhoneNumberAlreadyExists,
	}
}

// phoneUID is the user ID a phone number gets without Firebase.
func phoneUID(phone string) string {
	return uuid.NewSHA1(phoneNamespace, []byte(phone)).String()
}

func (p *identityProvider) IdentityForPhone(ctx context.Context, phone string) (*entity.Identity, error) {
	if p.client == nil {
		return &entity.Identity{UID: phoneUID(phone), Phone: phone}, nil
	}

	user, err := p.client.GetUserByPhoneNumber(ctx, phone)
	if err != nil && p.notFound(err) {
		user, err = p.client.CreateUser(ctx, (&auth.UserToCreate{}).PhoneNumber(phone))
		// Another instance created the account first.
		if err != nil && p.alreadyExists(err) {
			user, err = p.client.GetUserByPhoneNumber(ctx, phone)
		}
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve phone account")
	}
	if user == nil || user.UserInfo == nil {
		return nil, errors.New("phone account has no user info")
	}

	return &entity.Identity{UID: user.UID, Phone: phone}, nil
}
