package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/navigation"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const localPhoneLength = 10

// authService implements the AuthUsecase interface.
type authService struct {
	otpStore     repository.OTPStore
	revocations  repository.TokenRevocationStore
	userRepo     repository.UserRepository
	hasher       service.CodeHasher
	tokenService service.TokenService
	publisher    service.EventPublisher
	verifier     service.IdentityVerifier
	identities   service.IdentityProvider
	limiter      service.RateLimiter
	countryCode  string
	otpTTL       time.Duration
	maxAttempts  int
	logger       *slog.Logger

	now          func() time.Time
	generateCode func() (string, error)
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	OTPStore     repository.OTPStore
	Revocations  repository.TokenRevocationStore
	UserRepo     repository.UserRepository
	Hasher       service.CodeHasher
	TokenService service.TokenService
	Publisher    service.EventPublisher
	Verifier     service.IdentityVerifier
	Identities   service.IdentityProvider
	Limiter      service.RateLimiter
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		otpStore:     params.OTPStore,
		revocations:  params.Revocations,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		publisher:    params.Publisher,
		verifier:     params.Verifier,
		identities:   params.Identities,
		limiter:      params.Limiter,
		countryCode:  params.Config.Auth.CountryCode,
		otpTTL:       params.Config.Auth.OTPTTL,
		maxAttempts:  params.Config.Auth.OTPMaxAttempts,
		logger:       params.Logger,
		now:          time.Now,
		generateCode: generateOTP,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendOTP validates the phone number, stores a hashed challenge and publishes the code for delivery.
func (srv *authService) SendOTP(ctx context.Context, phone string) (*usecase.SendOTPOutput, error) {
	phone = strings.TrimSpace(phone)
	if !isDigits(phone, localPhoneLength) {
		return nil, domainerrors.ErrPhoneInvalid
	}
	e164 := entity.NormalizePhone(srv.countryCode, phone)

	if !srv.limiter.Allow(e164) {
		srv.log(ctx).Warn("OTP request throttled", slog.String("phone", e164))

		return nil, domainerrors.ErrOTPRateLimited
	}

	code, err := srv.generateCode()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate code")
	}
	codeHash, err := srv.hasher.Hash(code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash code")
	}

	challenge := &entity.OTPChallenge{
		Handle:    uuid.NewString(),
		Phone:     e164,
		CodeHash:  codeHash,
		ExpiresAt: srv.now().Add(srv.otpTTL),
	}
	if err := srv.otpStore.Save(ctx, challenge); err != nil {
		return nil, errors.Wrap(err, "failed to save otp challenge")
	}

	event := &service.OTPEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Handle:    challenge.Handle,
		Phone:     e164,
		Code:      code,
		ExpiresAt: challenge.ExpiresAt,
	}
	if err := srv.publisher.PublishOTPEvent(ctx, event); err != nil {
		if delErr := srv.otpStore.Delete(ctx, challenge.Handle); delErr != nil {
			srv.log(ctx).Error("Failed to discard undelivered challenge", slog.Any("error", delErr))
		}

		return nil, errors.Wrap(domainerrors.ErrServiceUnavailable.WithDetails(err.Error()), "failed to publish otp event")
	}

	srv.log(ctx).Info("OTP sent", slog.String("phone", e164), slog.String("handle", challenge.Handle))

	return &usecase.SendOTPOutput{
		Handle:    challenge.Handle,
		Phone:     e164,
		ExpiresAt: challenge.ExpiresAt,
	}, nil
}

// ConfirmOTP verifies the code of a pending challenge and signs the phone number in.
func (srv *authService) ConfirmOTP(ctx context.Context, handle, code string) (*usecase.AuthOutput, error) {
	code = strings.TrimSpace(code)
	if !isDigits(code, otpLength) {
		return nil, domainerrors.ErrOTPInvalid
	}
	if strings.TrimSpace(handle) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("handle is required")
	}

	challenge, err := srv.otpStore.Find(ctx, handle)
	if err != nil {
		if errors.Is(err, repository.ErrChallengeNotFound) {
			return nil, domainerrors.ErrOTPExpired
		}

		return nil, errors.Wrap(err, "failed to find otp challenge")
	}

	if challenge.Expired(srv.now()) {
		srv.discardChallenge(ctx, handle)

		return nil, domainerrors.ErrOTPExpired
	}

	if !srv.hasher.Check(code, challenge.CodeHash) {
		attempts, err := srv.otpStore.IncrementAttempts(ctx, handle)
		if err != nil {
			return nil, errors.Wrap(err, "failed to record attempt")
		}
		if attempts >= srv.maxAttempts {
			srv.log(ctx).Warn("OTP attempts exhausted", slog.String("handle", handle))
			srv.discardChallenge(ctx, handle)
		}

		return nil, domainerrors.ErrOTPIncorrect
	}

	// Concurrent confirmations of one code race here; only the one that removes the challenge signs in.
	taken, err := srv.otpStore.Take(ctx, handle)
	if err != nil {
		if errors.Is(err, repository.ErrChallengeNotFound) {
			return nil, domainerrors.ErrOTPExpired
		}

		return nil, errors.Wrap(err, "failed to take otp challenge")
	}

	identity, err := srv.identities.IdentityForPhone(ctx, taken.Phone)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrServiceUnavailable.WithDetails(err.Error()), "failed to resolve identity")
	}

	return srv.signIn(ctx, *identity)
}

// ConfirmIDToken signs in with an ID token issued by the managed auth service.
func (srv *authService) ConfirmIDToken(ctx context.Context, idToken string) (*usecase.AuthOutput, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("id_token is required")
	}

	identity, err := srv.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid.WithDetails(err.Error()), "failed to verify id token")
	}

	return srv.signIn(ctx, *identity)
}

// Refresh rotates a refresh token. The presented token is revoked so it cannot be replayed.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	claims, err := srv.validateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if err := srv.revoke(ctx, claims); err != nil {
		return nil, err
	}

	return srv.signIn(ctx, entity.Identity{UID: claims.UserID, Phone: claims.Phone})
}

// SignOut revokes the refresh token.
func (srv *authService) SignOut(ctx context.Context, refreshToken string) error {
	claims, err := srv.validateRefreshToken(ctx, refreshToken)
	if err != nil {
		return err
	}

	if err := srv.revoke(ctx, claims); err != nil {
		return err
	}

	srv.log(ctx).Info("User signed out", slog.String("uid", claims.UserID))

	return nil
}

// Session resolves role and profile state. A missing profile is not an error.
func (srv *authService) Session(ctx context.Context, identity entity.Identity) (*entity.Session, error) {
	user, err := srv.userRepo.FindByUID(ctx, identity.UID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return &entity.Session{Identity: identity, Role: entity.RoleUser}, nil
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if identity.Phone == "" {
		identity.Phone = user.Phone
	}

	return &entity.Session{Identity: identity, Role: user.Role, ProfileComplete: true}, nil
}

func (srv *authService) signIn(ctx context.Context, identity entity.Identity) (*usecase.AuthOutput, error) {
	session, err := srv.Session(ctx, identity)
	if err != nil {
		return nil, err
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(identity.UID, session.Phone, []string{session.Role.String()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Info("User signed in",
		slog.String("uid", identity.UID),
		slog.String("role", session.Role.String()),
		slog.Bool("profile_complete", session.ProfileComplete),
	)

	return &usecase.AuthOutput{
		Tokens:  entity.AuthTokens{AccessToken: accessToken, RefreshToken: refreshToken},
		Session: session,
		Landing: navigation.Landing(session),
	}, nil
}

func (srv *authService) validateRefreshToken(ctx context.Context, refreshToken string) (*service.Claims, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("refresh_token is required")
	}

	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
	}
	if claims.Type != service.TokenTypeRefresh {
		return nil, domainerrors.ErrTokenInvalid.WithDetails("not a refresh token")
	}

	revoked, err := srv.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check token revocation")
	}
	if revoked {
		return nil, domainerrors.ErrTokenInvalid.WithDetails("token revoked")
	}

	return claims, nil
}

func (srv *authService) revoke(ctx context.Context, claims *service.Claims) error {
	var until time.Time
	if claims.ExpiresAt != nil {
		until = claims.ExpiresAt.Time
	} else {
		until = srv.now().Add(srv.tokenService.GetRefreshTokenDuration())
	}

	if err := srv.revocations.Revoke(ctx, claims.ID, until); err != nil {
		return errors.Wrap(err, "failed to revoke token")
	}

	return nil
}

func (srv *authService) discardChallenge(ctx context.Context, handle string) {
	if err := srv.otpStore.Delete(ctx, handle); err != nil {
		srv.log(ctx).Error("Failed to delete otp challenge", slog.String("handle", handle), slog.Any("error", err))
	}
}
