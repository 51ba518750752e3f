// Package firebase builds the Firebase app shared by Firestore, Auth and Cloud Messaging.
package firebase

import (
	"context"
	"log/slog"

	"storefront/config"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// AppParams holds the dependencies for NewApp.
type AppParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewApp initializes the Firebase app. It returns a nil app when no project is
// configured, which callers treat as "Firebase disabled".
func NewApp(params AppParams) (*firebase.App, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.ProjectID == "" {
		params.Logger.Warn("Firebase is not configured; Firestore, ID tokens and push are disabled")

		return nil, nil
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(context.Background(), &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("Firebase app initialized", slog.String("project_id", cfg.ProjectID))

	return app, nil
}
