package middleware

import (
	"context"
	"time"

	"connectrpc.com/connect"
	"github.com/iskorotkov/account-ledger/internal/metrics"
)

func RecordMetrics(m *metrics.Metrics) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()

			resp, err := next(ctx, req)

			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}

			procedure := req.Spec().Procedure
			m.Requests.WithLabelValues(procedure, code).Inc()
			m.Latency.WithLabelValues(procedure).Observe(time.Since(start).Seconds())

			return resp, err
		}
	}
}
