package firebase

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokenVerifier struct {
	token *auth.Token
	err   error
}

func (f *fakeTokenVerifier) VerifyIDToken(context.Context, string) (*auth.Token, error) {
	return f.token, f.err
}

func TestIdentityVerifier_VerifyIDToken(t *testing.T) {
	verifier := &identityVerifier{client: &fakeTokenVerifier{token: &auth.Token{
		UID:    "uid-1",
		Claims: map[string]any{phoneClaim: "+919876543210"},
	}}}

	identity, err := verifier.VerifyIDToken(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, &entity.Identity{UID: "uid-1", Phone: "+919876543210"}, identity)
}

func TestIdentityVerifier_MissingPhone(t *testing.T) {
	verifier := &identityVerifier{client: &fakeTokenVerifier{token: &auth.Token{UID: "uid-1"}}}

	_, err := verifier.VerifyIDToken(context.Background(), "token")
	assert.Error(t, err)
}

func TestIdentityVerifier_Rejected(t *testing.T) {
	verifier := &identityVerifier{client: &fakeTokenVerifier{err: errors.New("expired")}}

	_, err := verifier.VerifyIDToken(context.Background(), "token")
	assert.ErrorContains(t, err, "failed to verify id token")
}

func TestIdentityVerifier_Disabled(t *testing.T) {
	verifier, err := NewIdentityVerifier(nil)
	require.NoError(t, err)

	_, err = verifier.VerifyIDToken(context.Background(), "token")
	assert.ErrorIs(t, err, ErrVerifierDisabled)
}
