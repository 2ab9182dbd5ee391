package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the kiosk backend
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Session metrics
	SessionsActive   prometheus.Gauge
	SessionsCreated  prometheus.Counter
	SessionsRestored prometheus.Counter
	SessionsExpired  prometheus.Counter
	SessionSaves     *prometheus.CounterVec

	// Conversation metrics
	TurnsTotal           *prometheus.CounterVec
	ConversationsDone    prometheus.Counter
	RecommendationsServed prometheus.Counter

	// Collaborator metrics (inference, STT, TTS)
	CollaboratorCalls    *prometheus.CounterVec
	CollaboratorDuration *prometheus.HistogramVec

	// WebSocket metrics
	WSConnections prometheus.Gauge
	WSMessages    *prometheus.CounterVec

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time

	registry *prometheus.Registry
}

// NewMetrics creates a metrics collector backed by its own registry
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	m := &Metrics{
		startTime: time.Now(),
		registry:  registry,

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kiosk_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "kiosk_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),

		SessionsActive: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "kiosk_sessions_active",
				Help: "Number of live kiosk sessions",
			},
		),
		SessionsCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "kiosk_sessions_created_total",
				Help: "Total number of sessions created",
			},
		),
		SessionsRestored: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "kiosk_sessions_restored_total",
				Help: "Total number of sessions restored after a reload",
			},
		),
		SessionsExpired: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "kiosk_sessions_expired_total",
				Help: "Total number of sessions expired by inactivity",
			},
		),
		SessionSaves: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kiosk_session_saves_total",
				Help: "Total number of session save attempts",
			},
			[]string{"status"},
		),

		TurnsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kiosk_conversation_turns_total",
				Help: "Total number of conversation turns",
			},
			[]string{"role", "source"},
		),
		ConversationsDone: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "kiosk_conversations_completed_total",
				Help: "Total number of conversations reaching recommendations",
			},
		),
		RecommendationsServed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "kiosk_recommendations_served_total",
				Help: "Total number of recommendation sets served",
			},
		),

		CollaboratorCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kiosk_collaborator_calls_total",
				Help: "Total calls to external collaborators",
			},
			[]string{"collaborator", "status"},
		),
		CollaboratorDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "kiosk_collaborator_duration_seconds",
				Help:    "External collaborator call duration in seconds",
				Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"collaborator"},
		),

		WSConnections: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "kiosk_ws_connections",
				Help: "Number of active WebSocket connections",
			},
		),
		WSMessages: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kiosk_ws_messages_total",
				Help: "Total number of WebSocket messages",
			},
			[]string{"direction", "type"},
		),

		Uptime: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "kiosk_uptime_seconds",
				Help: "Backend uptime in seconds",
			},
		),
	}

	go m.updateUptime()

	return m
}

// SetSessionsActive records the current number of live session records
func (m *Metrics) SetSessionsActive(n int) {
	m.SessionsActive.Set(float64(n))
}

// Handler returns the Prometheus exposition handler for this registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) updateUptime() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.Uptime.Set(time.Since(m.startTime).Seconds())
	}
}

// RecordHTTPRequest records an HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordCollaboratorCall records an external collaborator call
func (m *Metrics) RecordCollaboratorCall(collaborator, status string, duration time.Duration) {
	m.CollaboratorCalls.WithLabelValues(collaborator, status).Inc()
	m.CollaboratorDuration.WithLabelValues(collaborator).Observe(duration.Seconds())
}

// RecordTurn records a conversation turn
func (m *Metrics) RecordTurn(role, source string) {
	m.TurnsTotal.WithLabelValues(role, source).Inc()
}

// RecordWSMessage records a WebSocket message
func (m *Metrics) RecordWSMessage(direction, msgType string) {
	m.WSMessages.WithLabelValues(direction, msgType).Inc()
}
