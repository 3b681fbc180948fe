package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	bookings      *prometheus.CounterVec
	slotConflicts *prometheus.CounterVec
	artifactFails *prometheus.CounterVec
}

// New создает и регистрирует метрики в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Number of created bookings by kind (facility, session)",
			ConstLabels: constLabels,
		}, []string{"kind"}),
		slotConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_slot_conflicts_total",
			Help:        "Number of booking attempts rejected because of reserved slots",
			ConstLabels: constLabels,
		}, []string{"sport"}),
		artifactFails: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "verification_artifact_failures_total",
			Help:        "Number of bookings persisted without verification artifact",
			ConstLabels: constLabels,
		}, []string{"kind"}),
	}

	reg.MustRegister(m.httpRequests, m.httpDuration, m.bookings, m.slotConflicts, m.artifactFails)
	return m
}

// ObserveHTTPRequest учитывает HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) IncBookingCreated(kind string) {
	m.bookings.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncSlotConflict(sport string) {
	m.slotConflicts.WithLabelValues(sport).Inc()
}

func (m *Metrics) IncArtifactFailure(kind string) {
	m.artifactFails.WithLabelValues(kind).Inc()
}

// RegisterDBStats регистрирует метрики connection pool
func RegisterDBStats(serviceName string, db *sql.DB) {
	constLabels := prometheus.Labels{"service": serviceName}

	prometheus.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, func() float64 { return float64(db.Stats().OpenConnections) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, func() float64 { return float64(db.Stats().InUse) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, func() float64 { return float64(db.Stats().WaitCount) }),
	)
}

// Nop заглушка для выключенных метрик
type Nop struct{}

func (Nop) IncBookingCreated(string)  {}
func (Nop) IncSlotConflict(string)    {}
func (Nop) IncArtifactFailure(string) {}
