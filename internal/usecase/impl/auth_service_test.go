package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/navigation"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      *authService
	otpStore     *mockRepo.MockOTPStore
	revocations  *mockRepo.MockTokenRevocationStore
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockCodeHasher
	tokenService *mockSvc.MockTokenService
	publisher    *mockSvc.MockEventPublisher
	verifier     *mockSvc.MockIdentityVerifier
	identities   *mockSvc.MockIdentityProvider
	limiter      *mockSvc.MockRateLimiter
	now          time.Time
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fx := authServiceFixtures{
		otpStore:     mockRepo.NewMockOTPStore(t),
		revocations:  mockRepo.NewMockTokenRevocationStore(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockCodeHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
		verifier:     mockSvc.NewMockIdentityVerifier(t),
		identities:   mockSvc.NewMockIdentityProvider(t),
		limiter:      mockSvc.NewMockRateLimiter(t),
		now:          time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
	}

	svc := NewAuthService(AuthServiceParams{
		OTPStore:     fx.otpStore,
		Revocations:  fx.revocations,
		UserRepo:     fx.userRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		Publisher:    fx.publisher,
		Verifier:     fx.verifier,
		Identities:   fx.identities,
		Limiter:      fx.limiter,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	}).(*authService)
	svc.now = func() time.Time { return fx.now }
	svc.generateCode = func() (string, error) { return "123456", nil }
	fx.service = svc

	return fx
}

func TestAuthService_SendOTP_InvalidPhone(t *testing.T) {
	fx := createTestAuthService(t)

	for _, phone := range []string{"", "12345", "98765432101", "98765abcde"} {
		_, err := fx.service.SendOTP(context.Background(), phone)
		assert.ErrorIs(t, err, domainerrors.ErrPhoneInvalid, phone)
	}
}

func TestAuthService_SendOTP_RateLimited(t *testing.T) {
	fx := createTestAuthService(t)

	fx.limiter.EXPECT().Allow("+919876543210").Return(false)

	_, err := fx.service.SendOTP(context.Background(), "9876543210")
	assert.ErrorIs(t, err, domainerrors.ErrOTPRateLimited)
}

func TestAuthService_SendOTP_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.limiter.EXPECT().Allow("+919876543210").Return(true)
	fx.hasher.EXPECT().Hash("123456").Return("hashed", nil)
	fx.otpStore.EXPECT().
		Save(ctx, mock.MatchedBy(func(c *entity.OTPChallenge) bool {
			return c.Phone == "+919876543210" && c.CodeHash == "hashed" &&
				c.ExpiresAt.Equal(fx.now.Add(5*time.Minute)) && c.Handle != ""
		})).
		Return(nil)
	fx.publisher.EXPECT().
		PublishOTPEvent(ctx, mock.MatchedBy(func(e *service.OTPEvent) bool {
			return e.Code == "123456" && e.Phone == "+919876543210"
		})).
		Return(nil)

	out, err := fx.service.SendOTP(ctx, " 9876543210 ")
	require.NoError(t, err)
	assert.Equal(t, "+919876543210", out.Phone)
	assert.NotEmpty(t, out.Handle)
	assert.Equal(t, fx.now.Add(5*time.Minute), out.ExpiresAt)
}

func TestAuthService_SendOTP_PublishFailureDiscardsChallenge(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	var handle string
	fx.limiter.EXPECT().Allow(mock.Anything).Return(true)
	fx.hasher.EXPECT().Hash("123456").Return("hashed", nil)
	fx.otpStore.EXPECT().Save(ctx, mock.Anything).
		Run(func(_ context.Context, c *entity.OTPChallenge) { handle = c.Handle }).
		Return(nil)
	fx.publisher.EXPECT().PublishOTPEvent(ctx, mock.Anything).Return(errors.New("topic unavailable"))
	fx.otpStore.EXPECT().
		Delete(ctx, mock.MatchedBy(func(h string) bool { return h == handle })).
		Return(nil)

	out, err := fx.service.SendOTP(ctx, "9876543210")
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrServiceUnavailable)
}

func TestAuthService_ConfirmOTP_InvalidCode(t *testing.T) {
	fx := createTestAuthService(t)

	for _, code := range []string{"", "12345", "1234567", "12a456"} {
		_, err := fx.service.ConfirmOTP(context.Background(), "handle", code)
		assert.ErrorIs(t, err, domainerrors.ErrOTPInvalid, code)
	}
}

func TestAuthService_ConfirmOTP_UnknownHandle(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.otpStore.EXPECT().Find(ctx, "handle").Return(nil, repository.ErrChallengeNotFound)

	_, err := fx.service.ConfirmOTP(ctx, "handle", "123456")
	assert.ErrorIs(t, err, domainerrors.ErrOTPExpired)
}

func TestAuthService_ConfirmOTP_Expired(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.otpStore.EXPECT().Find(ctx, "handle").Return(&entity.OTPChallenge{
		Handle:    "handle",
		Phone:     "+919876543210",
		CodeHash:  "hashed",
		ExpiresAt: fx.now,
	}, nil)
	fx.otpStore.EXPECT().Delete(ctx, "handle").Return(nil)

	_, err := fx.service.ConfirmOTP(ctx, "handle", "123456")
	assert.ErrorIs(t, err, domainerrors.ErrOTPExpired)
}

func TestAuthService_ConfirmOTP_WrongCode(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	challenge := &entity.OTPChallenge{
		Handle:    "handle",
		Phone:     "+919876543210",
		CodeHash:  "hashed",
		ExpiresAt: fx.now.Add(time.Minute),
	}
	fx.otpStore.EXPECT().Find(ctx, "handle").Return(challenge, nil)
	fx.hasher.EXPECT().Check("654321", "hashed").Return(false)
	fx.otpStore.EXPECT().IncrementAttempts(ctx, "handle").Return(1, nil)

	_, err := fx.service.ConfirmOTP(ctx, "handle", "654321")
	assert.ErrorIs(t, err, domainerrors.ErrOTPIncorrect)
}

func TestAuthService_ConfirmOTP_AttemptsExhausted(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.otpStore.EXPECT().Find(ctx, "handle").Return(&entity.OTPChallenge{
		Handle:    "handle",
		CodeHash:  "hashed",
		ExpiresAt: fx.now.Add(time.Minute),
	}, nil)
	fx.hasher.EXPECT().Check("654321", "hashed").Return(false)
	fx.otpStore.EXPECT().IncrementAttempts(ctx, "handle").Return(3, nil)
	fx.otpStore.EXPECT().Delete(ctx, "handle").Return(nil)

	_, err := fx.service.ConfirmOTP(ctx, "handle", "654321")
	assert.ErrorIs(t, err, domainerrors.ErrOTPIncorrect)
}

func TestAuthService_ConfirmOTP_NewUserLandsOnSignup(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	phone := "+919876543210"
	challenge := &entity.OTPChallenge{
		Handle:    "handle",
		Phone:     phone,
		CodeHash:  "hashed",
		ExpiresAt: fx.now.Add(time.Minute),
	}

	fx.otpStore.EXPECT().Find(ctx, "handle").Return(challenge, nil)
	fx.hasher.EXPECT().Check("123456", "hashed").Return(true)
	fx.otpStore.EXPECT().Take(ctx, "handle").Return(challenge, nil)
	fx.identities.EXPECT().IdentityForPhone(ctx, phone).Return(&entity.Identity{UID: "fb-uid-1", Phone: phone}, nil)
	fx.userRepo.EXPECT().FindByUID(ctx, "fb-uid-1").Return(nil, repository.ErrUserNotFound)
	fx.tokenService.EXPECT().GenerateTokens("fb-uid-1", phone, []string{"user"}).Return("access", "refresh", nil)

	out, err := fx.service.ConfirmOTP(ctx, "handle", "123456")
	require.NoError(t, err)
	assert.Equal(t, navigation.RouteSignup, out.Landing)
	assert.False(t, out.Session.ProfileComplete)
	assert.Equal(t, entity.RoleUser, out.Session.Role)
	assert.Equal(t, "fb-uid-1", out.Session.UID)
	assert.Equal(t, "access", out.Tokens.AccessToken)
	assert.Equal(t, "refresh", out.Tokens.RefreshToken)
}

// A code confirmed here and an ID token for the same phone sign in the same user.
func TestAuthService_ConfirmOTP_SameUserAsIDToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	phone := "+919876543210"
	identity := &entity.Identity{UID: "fb-uid-1", Phone: phone}
	challenge := &entity.OTPChallenge{Handle: "handle", Phone: phone, CodeHash: "hashed", ExpiresAt: fx.now.Add(time.Minute)}

	fx.otpStore.EXPECT().Find(ctx, "handle").Return(challenge, nil)
	fx.hasher.EXPECT().Check("123456", "hashed").Return(true)
	fx.otpStore.EXPECT().Take(ctx, "handle").Return(challenge, nil)
	fx.identities.EXPECT().IdentityForPhone(ctx, phone).Return(identity, nil)
	fx.verifier.EXPECT().VerifyIDToken(ctx, "id-token").Return(identity, nil)
	fx.userRepo.EXPECT().FindByUID(ctx, "fb-uid-1").Return(&entity.User{UID: "fb-uid-1", Phone: phone, Role: entity.RoleUser}, nil).Twice()
	fx.tokenService.EXPECT().GenerateTokens("fb-uid-1", phone, []string{"user"}).Return("a", "r", nil).Twice()

	viaCode, err := fx.service.ConfirmOTP(ctx, "handle", "123456")
	require.NoError(t, err)
	viaToken, err := fx.service.ConfirmIDToken(ctx, "id-token")
	require.NoError(t, err)

	assert.Equal(t, viaToken.Session.UID, viaCode.Session.UID)
	assert.Equal(t, navigation.RouteHome, viaCode.Landing)
}

// Two requests with the correct code race; the one that loses the take must not sign in.
func TestAuthService_ConfirmOTP_ChallengeAlreadyTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.otpStore.EXPECT().Find(ctx, "handle").Return(&entity.OTPChallenge{
		Handle:    "handle",
		Phone:     "+919876543210",
		CodeHash:  "hashed",
		ExpiresAt: fx.now.Add(time.Minute),
	}, nil)
	fx.hasher.EXPECT().Check("123456", "hashed").Return(true)
	fx.otpStore.EXPECT().Take(ctx, "handle").Return(nil, repository.ErrChallengeNotFound)

	_, err := fx.service.ConfirmOTP(ctx, "handle", "123456")
	assert.ErrorIs(t, err, domainerrors.ErrOTPExpired)
}

func TestAuthService_ConfirmOTP_IdentityUnavailable(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	challenge := &entity.OTPChallenge{Handle: "handle", Phone: "+919876543210", CodeHash: "hashed", ExpiresAt: fx.now.Add(time.Minute)}
	fx.otpStore.EXPECT().Find(ctx, "handle").Return(challenge, nil)
	fx.hasher.EXPECT().Check("123456", "hashed").Return(true)
	fx.otpStore.EXPECT().Take(ctx, "handle").Return(challenge, nil)
	fx.identities.EXPECT().IdentityForPhone(ctx, "+919876543210").Return(nil, errors.New("deadline exceeded"))

	_, err := fx.service.ConfirmOTP(ctx, "handle", "123456")
	assert.ErrorIs(t, err, domainerrors.ErrServiceUnavailable)
}

func TestAuthService_ConfirmIDToken_AdminLandsOnDashboard(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.verifier.EXPECT().VerifyIDToken(ctx, "id-token").Return(&entity.Identity{UID: "admin-1"}, nil)
	fx.userRepo.EXPECT().FindByUID(ctx, "admin-1").Return(&entity.User{
		UID:   "admin-1",
		Phone: "+919000000000",
		Role:  entity.RoleAdmin,
	}, nil)
	fx.tokenService.EXPECT().GenerateTokens("admin-1", "+919000000000", []string{"admin"}).Return("a", "r", nil)

	out, err := fx.service.ConfirmIDToken(ctx, "id-token")
	require.NoError(t, err)
	assert.Equal(t, navigation.RouteDashboard, out.Landing)
	assert.True(t, out.Session.ProfileComplete)
	assert.Equal(t, "+919000000000", out.Session.Phone)
}

func TestAuthService_ConfirmIDToken_Rejected(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.verifier.EXPECT().VerifyIDToken(ctx, "bad").Return(nil, errors.New("signature invalid"))

	_, err := fx.service.ConfirmIDToken(ctx, "bad")
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	expiresAt := fx.now.Add(24 * time.Hour)
	claims := &service.Claims{
		UserID: "uid-1",
		Phone:  "+919876543210",
		Type:   service.TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-1",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	fx.tokenService.EXPECT().ValidateToken("refresh-token").Return(claims, nil)
	fx.revocations.EXPECT().IsRevoked(ctx, "jti-1").Return(false, nil)
	fx.revocations.EXPECT().
		Revoke(ctx, "jti-1", mock.MatchedBy(func(until time.Time) bool { return until.Equal(expiresAt.Truncate(time.Second)) })).
		Return(nil)
	fx.userRepo.EXPECT().FindByUID(ctx, "uid-1").Return(&entity.User{UID: "uid-1", Role: entity.RoleUser}, nil)
	fx.tokenService.EXPECT().GenerateTokens("uid-1", "+919876543210", []string{"user"}).Return("a2", "r2", nil)

	out, err := fx.service.Refresh(ctx, "refresh-token")
	require.NoError(t, err)
	assert.Equal(t, "r2", out.Tokens.RefreshToken)
	assert.Equal(t, navigation.RouteHome, out.Landing)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().ValidateToken("access-token").Return(&service.Claims{Type: service.TokenTypeAccess}, nil)

	_, err := fx.service.Refresh(context.Background(), "access-token")
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthService_SignOut_RevokedToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateToken("refresh-token").Return(&service.Claims{
		Type:             service.TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{ID: "jti-1"},
	}, nil)
	fx.revocations.EXPECT().IsRevoked(ctx, "jti-1").Return(true, nil)

	err := fx.service.SignOut(ctx, "refresh-token")
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthService_SignOut_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateToken("refresh-token").Return(&service.Claims{
		UserID:           "uid-1",
		Type:             service.TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{ID: "jti-1"},
	}, nil)
	fx.revocations.EXPECT().IsRevoked(ctx, "jti-1").Return(false, nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
	fx.revocations.EXPECT().Revoke(ctx, "jti-1", fx.now.Add(time.Hour)).Return(nil)

	assert.NoError(t, fx.service.SignOut(ctx, "refresh-token"))
}
