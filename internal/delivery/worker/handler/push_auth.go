package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// validateFunc matches idtoken.Validate.
type validateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// pushAuthenticator checks the OIDC token Pub/Sub attaches to push requests.
// See https://cloud.google.com/pubsub/docs/authenticate-push-subscriptions.
type pushAuthenticator struct {
	audience string
	validate validateFunc
}

func newPushAuthenticator(audience string) *pushAuthenticator {
	return &pushAuthenticator{audience: audience, validate: idtoken.Validate}
}

func (a *pushAuthenticator) verify(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	payload, err := a.validate(req.Context(), token, a.audienceFor(req))
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	switch payload.Issuer {
	case "accounts.google.com", "https://accounts.google.com":
	default:
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("service account email not verified")
	}

	return nil
}

// audienceFor falls back to the URL the request was sent to.
func (a *pushAuthenticator) audienceFor(req *http.Request) string {
	if a.audience != "" {
		return a.audience
	}

	scheme := "https"
	if req.TLS == nil && req.Header.Get("X-Forwarded-Proto") != "https" {
		scheme = "http"
	}

	return scheme + "://" + req.Host + req.URL.Path
}
