// metrics содержит прикладные метрики Prometheus tracks-api.
// Все методы безопасны для nil-получателя: сервис и middleware
// работают и без метрик (например, в тестах).
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tracks_api"

// Metrics — набор коллекторов приложения.
type Metrics struct {
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	gateRejections *prometheus.CounterVec
	tokensIssued   *prometheus.CounterVec
	revocations    *prometheus.CounterVec
	janitorDeleted prometheus.Counter
}

// New создаёт коллекторы и регистрирует их в reg.
// Повторная регистрация в том же реестре приводит к панике (MustRegister).
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		gateRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_gate_rejections_total",
			Help:      "Requests rejected by the auth gate, by reason.",
		}, []string{"reason"}),
		tokensIssued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_issued_total",
			Help:      "Issued JWTs by token type.",
		}, []string{"type"}),
		revocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "revocations_total",
			Help:      "Tokens written to the revocation ledger, by token type.",
		}, []string{"type"}),
		janitorDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocklist_gc_deleted_total",
			Help:      "Expired revocation records removed by the janitor.",
		}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.gateRejections,
		m.tokensIssued,
		m.revocations,
		m.janitorDeleted,
	)

	return m
}

// ObserveHTTP учитывает завершённый HTTP-запрос.
func (m *Metrics) ObserveHTTP(method, route string, status int, dur time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}

	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(dur.Seconds())
}

// GateRejected учитывает отказ auth gate с причиной reason.
func (m *Metrics) GateRejected(reason string) {
	if m == nil {
		return
	}
	m.gateRejections.WithLabelValues(reason).Inc()
}

// TokenIssued учитывает выпуск токена типа typ.
func (m *Metrics) TokenIssued(typ string) {
	if m == nil {
		return
	}
	m.tokensIssued.WithLabelValues(typ).Inc()
}

// TokenRevoked учитывает запись в журнал отзыва.
func (m *Metrics) TokenRevoked(typ string) {
	if m == nil {
		return
	}
	m.revocations.WithLabelValues(typ).Inc()
}

// RevocationsCollected учитывает удалённые janitor'ом записи.
func (m *Metrics) RevocationsCollected(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.janitorDeleted.Add(float64(n))
}
