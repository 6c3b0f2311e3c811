package metrics

import (
	"net/http"

	"github.com/iskorotkov/account-ledger/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	Requests   *prometheus.CounterVec
	Latency    *prometheus.HistogramVec
	Operations *prometheus.CounterVec
	Balance    prometheus.Gauge

	gatherer prometheus.Gatherer
}

// New registers the account collectors on reg. Use a fresh registry per
// server; registering twice on the same one panics.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "account_requests_total",
				Help: "Total RPC requests by procedure and result code.",
			},
			[]string{"procedure", "code"},
		),
		Latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "account_request_latency_seconds",
				Help:    "Latency of RPC requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"procedure"},
		),
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "account_operations_total",
				Help: "Total applied balance changes.",
			},
			[]string{"op"}, // deposit|withdraw
		),
		Balance: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "account_balance",
				Help: "Current account balance. Approximate for very large or precise values.",
			},
		),
		gatherer: reg,
	}

	reg.MustRegister(m.Requests, m.Latency, m.Operations, m.Balance)
	return m
}

func (m *Metrics) SetBalance(b domain.Balance) {
	m.Balance.Set(b.Amount.InexactFloat64())
}

func (m *Metrics) BalanceChanged(op domain.Op, b domain.Balance) {
	m.Operations.WithLabelValues(op.String()).Inc()
	m.SetBalance(b)
}

// Handler serves /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
