package server

import (
	"net/http"

	"connectrpc.com/connect"
	"github.com/iskorotkov/account-ledger/internal/api/accountv1/accountv1connect"
	"github.com/iskorotkov/account-ledger/internal/metrics"
	"github.com/iskorotkov/account-ledger/internal/middleware"
)

// MaxRequestBytes caps a single request message. Account requests carry one
// amount and fit in far less.
const MaxRequestBytes = 4 << 10

// NewHandler mounts the account service, /health and, when m is not nil,
// /metrics.
func NewHandler(svc accountv1connect.AccountServiceHandler, m *metrics.Metrics) http.Handler {
	interceptors := []connect.Interceptor{middleware.LogRequests()}
	if m != nil {
		interceptors = append(interceptors, middleware.RecordMetrics(m))
	}

	mux := http.NewServeMux()
	mux.Handle(accountv1connect.NewAccountServiceHandler(svc,
		connect.WithInterceptors(interceptors...),
		connect.WithReadMaxBytes(MaxRequestBytes),
	))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if m != nil {
		mux.Handle("/metrics", m.Handler())
	}

	return mux
}
