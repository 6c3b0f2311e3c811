package middleware

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

func LogRequests() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			attrs := []any{
				"procedure", req.Spec().Procedure,
				"req", req.Any(),
				"peer", req.Peer().Addr,
			}

			slog.DebugContext(ctx, "got request", attrs...)

			start := time.Now()
			resp, err := next(ctx, req)
			attrs = append(attrs, "elapsed", time.Since(start))
			if err != nil {
				attrs = append(attrs, "code", connect.CodeOf(err).String(), "err", err)
				slog.Log(ctx, levelFor(err), "request not processed", attrs...)
				return resp, err
			}

			attrs = append(attrs, "resp", resp.Any())
			slog.DebugContext(ctx, "request processed", attrs...)
			return resp, nil
		}
	}
}

// Rejected amounts are ordinary traffic.
func levelFor(err error) slog.Level {
	switch connect.CodeOf(err) {
	case connect.CodeInvalidArgument, connect.CodeFailedPrecondition, connect.CodeCanceled:
		return slog.LevelDebug
	default:
		return slog.LevelWarn
	}
}
