package sms

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWebhookSender_SendSMS(t *testing.T) {
	var received webhookMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	sender := NewWebhookSender(server.URL, newDiscardLogger())

	require.NoError(t, sender.SendSMS(context.Background(), "+919876543210", "Your code is 123456"))
	assert.Equal(t, webhookMessage{To: "+919876543210", Body: "Your code is 123456"}, received)
}

func TestWebhookSender_Statuses(t *testing.T) {
	cases := []struct {
		status   int
		rejected bool
	}{
		{http.StatusBadRequest, true},
		{http.StatusTooManyRequests, false},
		{http.StatusBadGateway, false},
	}

	for _, tc := range cases {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
		}))

		err := NewWebhookSender(server.URL, newDiscardLogger()).SendSMS(context.Background(), "+919876543210", "x")
		require.Error(t, err)
		assert.Equal(t, tc.rejected, errors.Is(err, service.ErrSMSRejected), "status %d", tc.status)

		server.Close()
	}
}

func TestNewSender(t *testing.T) {
	cfg := &config.Config{Worker: &config.WorkerConfig{SMSSender: constants.SMSSenderLog}}
	sender, err := NewSender(SenderParams{Config: cfg, Logger: newDiscardLogger()})
	require.NoError(t, err)
	assert.IsType(t, &logSender{}, sender)
	assert.NoError(t, sender.SendSMS(context.Background(), "+919876543210", "x"))

	cfg.Worker = &config.WorkerConfig{SMSSender: constants.SMSSenderWebhook}
	_, err = NewSender(SenderParams{Config: cfg, Logger: newDiscardLogger()})
	assert.Error(t, err)

	cfg.Worker = &config.WorkerConfig{SMSSender: "carrier-pigeon"}
	_, err = NewSender(SenderParams{Config: cfg, Logger: newDiscardLogger()})
	assert.Error(t, err)
}
