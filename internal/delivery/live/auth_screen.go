package live

import (
	"context"
	"sync"

	"storefront/internal/delivery/notice"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/navigation"
	"storefront/internal/usecase"
)

// Auth channel actions. They cover the login and signup screens.
const (
	ActionSendOTP         = "send_otp"
	ActionConfirmOTP      = "confirm_otp"
	ActionConfirmIDToken  = "confirm_id_token"
	ActionCompleteProfile = "complete_profile"
	ActionSuggestAddress  = "suggest_address"
	ActionRefreshSession  = "refresh_session"
	ActionSignOut         = "sign_out"
)

type phonePayload struct {
	Phone string `json:"phone"`
}

type confirmPayload struct {
	Handle string `json:"handle"`
	Code   string `json:"code"`
}

type idTokenPayload struct {
	IDToken string `json:"id_token"`
}

type profilePayload struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type positionPayload struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

type refreshPayload struct {
	RefreshToken string `json:"refresh_token"`
}

// AuthState is pushed whenever the signed-in session changes.
type AuthState struct {
	Session *entity.Session  `json:"session"`
	Landing string           `json:"landing"`
	Tabs    []navigation.Tab `json:"tabs"`
}

func authState(session *entity.Session) AuthState {
	return AuthState{
		Session: session,
		Landing: navigation.Landing(session),
		Tabs:    navigation.Tabs(session),
	}
}

// authScreen streams auth state changes and runs the sign-in flow.
type authScreen struct {
	s *session

	mu      sync.Mutex
	current *entity.Session
}

func newAuthScreen(s *session) screen {
	return &authScreen{s: s, current: s.auth}
}

func (a *authScreen) open(ctx context.Context) error {
	a.mu.Lock()
	current := a.current
	a.mu.Unlock()

	if current != nil {
		resolved, err := a.s.deps.auth.Session(ctx, current.Identity)
		if err != nil {
			return err
		}
		current = resolved
	}
	a.publish(current)

	return nil
}

func (a *authScreen) publish(session *entity.Session) {
	a.mu.Lock()
	a.current = session
	a.mu.Unlock()

	a.s.machine.Deliver(authState(session))
}

func (a *authScreen) identity() (entity.Identity, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current == nil {
		return entity.Identity{}, false
	}

	return a.current.Identity, true
}

func (a *authScreen) signedIn(out *usecase.AuthOutput) {
	a.publish(out.Session)
}

func (a *authScreen) handle(ctx context.Context, msg Message) error {
	switch msg.Action {
	case ActionSendOTP:
		var p phonePayload
		if !a.s.payload(msg, &p) {
			return nil
		}
		a.s.submit(ctx, msg, func(ctx context.Context) (any, string, error) {
			out, err := a.s.deps.auth.SendOTP(ctx, p.Phone)

			return out, "", err
		})

	case ActionConfirmOTP:
		var p confirmPayload
		if !a.s.payload(msg, &p) {
			return nil
		}
		a.s.submit(ctx, msg, func(ctx context.Context) (any, string, error) {
			out, err := a.s.deps.auth.ConfirmOTP(ctx, p.Handle, p.Code)
			if err != nil {
				return nil, "", err
			}
			a.signedIn(out)

			return out, "", nil
		})

	case ActionConfirmIDToken:
		var p idTokenPayload
		if !a.s.payload(msg, &p) {
			return nil
		}
		a.s.submit(ctx, msg, func(ctx context.Context) (any, string, error) {
			out, err := a.s.deps.auth.ConfirmIDToken(ctx, p.IDToken)
			if err != nil {
				return nil, "", err
			}
			a.signedIn(out)

			return out, "", nil
		})

	case ActionCompleteProfile:
		var p profilePayload
		if !a.s.payload(msg, &p) {
			return nil
		}
		identity, ok := a.identity()
		if !ok {
			return domainerrors.ErrTokenInvalid
		}
		a.s.submit(ctx, msg, func(ctx context.Context) (any, string, error) {
			user, err := a.s.deps.profile.CompleteProfile(ctx, identity, &usecase.CompleteProfileInput{
				Name:    p.Name,
				Address: p.Address,
			})
			if err != nil {
				return nil, "", err
			}
			session, err := a.s.deps.auth.Session(ctx, identity)
			if err != nil {
				return nil, "", err
			}
			a.publish(session)

			return user, notice.ProfileSaved, nil
		})

	case ActionSuggestAddress:
		var p positionPayload
		if !a.s.payload(msg, &p) {
			return nil
		}
		a.s.submit(ctx, msg, func(ctx context.Context) (any, string, error) {
			address, err := a.s.deps.profile.SuggestAddress(ctx, p.Latitude, p.Longitude)

			return map[string]string{"address": address}, "", err
		})

	case ActionRefreshSession:
		return a.open(ctx)

	case ActionSignOut:
		var p refreshPayload
		if !a.s.payload(msg, &p) {
			return nil
		}
		a.s.submit(ctx, msg, func(ctx context.Context) (any, string, error) {
			if err := a.s.deps.auth.SignOut(ctx, p.RefreshToken); err != nil {
				return nil, "", err
			}
			a.publish(nil)

			return nil, notice.SignedOut, nil
		})

	default:
		return errUnknownAction
	}

	return nil
}
