// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"database/sql"
	"net/http"

	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storefront"

// Export kinds and outcomes.
const (
	ExportInvoice = "invoice"
	ExportReport  = "report"

	ExportOK        = "ok"
	ExportEmpty     = "empty"
	ExportDismissed = "dismissed"
	ExportFailed    = "failed"
)

// OTP delivery outcomes of the worker.
const (
	DeliverySent     = "sent"
	DeliveryExpired  = "expired"
	DeliveryRejected = "rejected"
	DeliveryRetry    = "retry"
	DeliveryDropped  = "dropped"
)

// Metrics groups the collectors registered on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	liveConnections *prometheus.GaugeVec
	exports         *prometheus.CounterVec
	reminderRuns    *prometheus.CounterVec
	remindersSent   prometheus.Counter
	otpDeliveries   *prometheus.CounterVec
}

// New creates and registers every collector.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		}, []string{"method", "route"}),
		liveConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "live",
			Name:      "connections",
			Help:      "Open live screen connections.",
		}, []string{"screen"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "export",
			Name:      "documents_total",
			Help:      "Exported documents by kind and outcome.",
		}, []string{"kind", "outcome"}),
		reminderRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "reminder_runs_total",
			Help:      "Delivery reminder job runs by outcome.",
		}, []string{"outcome"}),
		remindersSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "reminders_sent_total",
			Help:      "Reminder notifications accepted by the push service.",
		}),
		otpDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "otp_deliveries_total",
			Help:      "Verification code push messages by outcome.",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		m.httpInFlight,
		m.httpRequests,
		m.httpDuration,
		m.liveConnections,
		m.exports,
		m.reminderRuns,
		m.remindersSent,
		m.otpDeliveries,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RequestStarted marks an in-flight request and returns the function ending it.
func (m *Metrics) RequestStarted() func() {
	m.httpInFlight.Inc()

	return m.httpInFlight.Dec
}

// RegisterDBStats exports the connection pool statistics of db, labelled with dbName.
func (m *Metrics) RegisterDBStats(db *sql.DB, dbName string) error {
	if err := m.registry.Register(collectors.NewDBStatsCollector(db, dbName)); err != nil {
		return errors.Wrap(err, "failed to register database stats")
	}

	return nil
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(seconds)
}

// LiveConnected tracks an open live screen and returns the function closing it.
func (m *Metrics) LiveConnected(screen string) func() {
	gauge := m.liveConnections.WithLabelValues(screen)
	gauge.Inc()

	return gauge.Dec
}

// ExportFinished counts one export attempt.
func (m *Metrics) ExportFinished(kind, outcome string) {
	m.exports.WithLabelValues(kind, outcome).Inc()
}

// RecordExport classifies and counts the result of one export. produced is
// false when no document came back.
func (m *Metrics) RecordExport(kind string, produced bool, err error) {
	switch {
	case errors.Is(err, domainerrors.ErrNothingToExport):
		m.ExportFinished(kind, ExportEmpty)
	case err != nil:
		m.ExportFinished(kind, ExportFailed)
	case !produced:
		m.ExportFinished(kind, ExportDismissed)
	default:
		m.ExportFinished(kind, ExportOK)
	}
}

// ReminderRun counts one reminder job run and the notifications it sent.
func (m *Metrics) ReminderRun(outcome string, sent int) {
	m.reminderRuns.WithLabelValues(outcome).Inc()
	m.remindersSent.Add(float64(sent))
}

// OTPDelivered counts one push message handled by the worker.
func (m *Metrics) OTPDelivered(outcome string) {
	m.otpDeliveries.WithLabelValues(outcome).Inc()
}
