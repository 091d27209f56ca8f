package middleware

import (
	"context"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/totalmanager/internal/models"
)

// Metrics holds the Prometheus collectors for RPC traffic and event logs.
// A nil *Metrics records nothing.
type Metrics struct {
	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	eventLogs *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "totalmanager",
			Name:      "rpc_requests_total",
			Help:      "RPC requests by procedure and result code.",
		}, []string{"procedure", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "totalmanager",
			Name:      "rpc_duration_seconds",
			Help:      "RPC handling time by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		eventLogs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "totalmanager",
			Name:      "event_logs_total",
			Help:      "Collection event logs written, by type.",
		}, []string{"type"}),
	}
	reg.MustRegister(m.requests, m.duration, m.eventLogs)
	return m
}

// Interceptor returns a Connect interceptor that counts and times RPCs.
func (m *Metrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if m == nil {
				return next(ctx, req)
			}
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			m.requests.WithLabelValues(procedure, code).Inc()
			m.duration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
			return resp, err
		}
	}
}

// ObserveEventLogs counts logs that were committed.
func (m *Metrics) ObserveEventLogs(logs ...*models.EventLog) {
	if m == nil {
		return
	}
	for _, l := range logs {
		m.eventLogs.WithLabelValues(string(l.Type)).Inc()
	}
}
