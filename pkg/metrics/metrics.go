package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "droply"

// Metrics коллекторы Prometheus сервиса доступности.
// Все методы безопасны для nil-получателя: при выключенных метриках передается nil.
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	monthsBuiltTotal    *prometheus.CounterVec
	slotsGeneratedTotal prometheus.Counter
	ruleMutationsTotal  *prometheus.CounterVec

	activeSessions       prometheus.Gauge
	sessionsEvictedTotal prometheus.Counter
}

// New создает и регистрирует коллекторы. Если reg == nil, используется реестр по умолчанию
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		serviceName: serviceName,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "requests_total",
			Help:        "Total HTTP requests by route and status code",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "HTTP request latency by route",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route"}),
		monthsBuiltTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "calendar",
			Name:        "months_built_total",
			Help:        "Total calendar month views built",
			ConstLabels: constLabels,
		}, []string{"result"}),
		slotsGeneratedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "calendar",
			Name:        "slots_generated_total",
			Help:        "Total time slots generated for month and day views",
			ConstLabels: constLabels,
		}),
		ruleMutationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "rules",
			Name:        "mutations_total",
			Help:        "Total rule mutations by operation and result",
			ConstLabels: constLabels,
		}, []string{"operation", "result"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "sessions",
			Name:        "active",
			Help:        "Number of live rule sessions",
			ConstLabels: constLabels,
		}),
		sessionsEvictedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "sessions",
			Name:        "evicted_total",
			Help:        "Total idle sessions evicted",
			ConstLabels: constLabels,
		}),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.monthsBuiltTotal,
		m.slotsGeneratedTotal,
		m.ruleMutationsTotal,
		m.activeSessions,
		m.sessionsEvictedTotal,
	)

	return m
}

// ObserveHTTPRequest учитывает HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveMonthBuilt учитывает построение месяца и количество слотов в нем
func (m *Metrics) ObserveMonthBuilt(ok bool, slots int) {
	if m == nil {
		return
	}
	m.monthsBuiltTotal.WithLabelValues(resultLabel(ok)).Inc()
	if slots > 0 {
		m.slotsGeneratedTotal.Add(float64(slots))
	}
}

// ObserveSlotsGenerated учитывает слоты, сгенерированные вне месяца (запрос одного дня)
func (m *Metrics) ObserveSlotsGenerated(slots int) {
	if m == nil || slots <= 0 {
		return
	}
	m.slotsGeneratedTotal.Add(float64(slots))
}

// ObserveRuleMutation учитывает изменение правил
func (m *Metrics) ObserveRuleMutation(operation string, ok bool) {
	if m == nil {
		return
	}
	m.ruleMutationsTotal.WithLabelValues(operation, resultLabel(ok)).Inc()
}

// SetActiveSessions выставляет количество живых сессий
func (m *Metrics) SetActiveSessions(count int) {
	if m == nil {
		return
	}
	m.activeSessions.Set(float64(count))
}

// ObserveSessionsEvicted учитывает вытесненные сессии
func (m *Metrics) ObserveSessionsEvicted(count int) {
	if m == nil || count <= 0 {
		return
	}
	m.sessionsEvictedTotal.Add(float64(count))
}

func resultLabel(ok bool) string {
	if ok {
		return "success"
	}
	return "error"
}
