package apiclient

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics métricas Prometheus de las llamadas al backend. Un *Metrics nil no registra nada.
type Metrics struct {
	duration     *prometheus.HistogramVec
	authFailures prometheus.Counter
}

// NewMetrics registra las métricas en el registerer indicado.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return &Metrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "backend_request_duration_seconds",
		Help:    "Duración de las llamadas al backend de inventario.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
	authFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "backend_auth_failures_total",
		Help: "Respuestas 401 recibidas en rutas autenticadas.",
	})
	reg.MustRegister(duration, authFailures)
	return &Metrics{duration: duration, authFailures: authFailures}
}

func (m *Metrics) observe(method, path string, status int, d time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.duration.WithLabelValues(method, RouteLabel(path), label).Observe(d.Seconds())
}

func (m *Metrics) authFailure() {
	if m == nil || m.authFailures == nil {
		return
	}
	m.authFailures.Inc()
}

// staticSegments segmentos fijos de las rutas del backend; el resto son ids.
var staticSegments = map[string]bool{
	"api": true, "autenticacao": true, "login": true,
	"produtos": true, "estoque-baixo": true,
	"movimentacoes": true, "entrada": true, "saida": true,
	"users": true, "reports": true, "stock": true,
}

// RouteLabel reemplaza los ids por {id} para mantener baja la cardinalidad.
// "/api/produtos/42" → "/api/produtos/{id}".
func RouteLabel(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	segments := strings.Split(path, "/")
	for i, s := range segments {
		if s != "" && !staticSegments[s] {
			segments[i] = "{id}"
		}
	}
	return strings.Join(segments, "/")
}
