package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/infra/realtime"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxtest"
)

func newTestParams(t *testing.T, driver string) Params {
	cfg := &config.Config{Storage: &config.StorageConfig{Driver: driver}}

	return Params{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Hub:    realtime.NewHub(),
	}
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(newTestParams(t, "mongo"))
	assert.ErrorContains(t, err, `unsupported storage driver "mongo"`)
}

func TestNew_FirestoreRequiresFirebaseApp(t *testing.T) {
	_, err := New(newTestParams(t, constants.StorageDriverFirestore))
	assert.ErrorContains(t, err, "firebase.projectId")
}

func TestNew_PostgresRequiresConnectionSettings(t *testing.T) {
	_, err := New(newTestParams(t, constants.StorageDriverPostgres))
	assert.ErrorContains(t, err, "postgres section")
}
