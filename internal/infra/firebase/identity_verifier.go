package firebase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

// phoneClaim is the ID token claim holding the verified phone number.
const phoneClaim = "phone_number"

// ErrVerifierDisabled is returned when ID tokens arrive but Firebase is not configured.
var ErrVerifierDisabled = errors.New("id token verification is not configured")

// tokenVerifier is the part of auth.Client the verifier needs.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type identityVerifier struct {
	client tokenVerifier
}

// NewIdentityVerifier creates an IdentityVerifier backed by Firebase Auth.
func NewIdentityVerifier(app *firebase.App) (service.IdentityVerifier, error) {
	if app == nil {
		return &identityVerifier{}, nil
	}

	client, err := app.Auth(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &identityVerifier{client: client}, nil
}

// VerifyIDToken checks the token and extracts the signed-in identity.
func (v *identityVerifier) VerifyIDToken(ctx context.Context, idToken string) (*entity.Identity, error) {
	if v.client == nil {
		return nil, ErrVerifierDisabled
	}

	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify id token")
	}

	phone, _ := token.Claims[phoneClaim].(string)
	if phone == "" {
		return nil, errors.New("id token carries no phone number")
	}

	return &entity.Identity{UID: token.UID, Phone: phone}, nil
}
