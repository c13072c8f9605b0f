package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/foodgram/internal/metrics"
)

// LoggingInterceptor logs one line per RPC and records it in the RPC metrics.
// Internal, Unknown and DataLoss errors log at ERROR; other codes at WARN.
// It must be registered before the auth interceptors so that calls they
// reject are recorded as well.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			ctx, who := withCaller(ctx)
			resp, err := next(ctx, req)
			elapsed := time.Since(start)

			procedure := req.Spec().Procedure
			attrs := []slog.Attr{
				slog.String("procedure", procedure),
				slog.String("user_id", who.userID), // empty if anonymous or rejected
				slog.String("peer", req.Peer().Addr),
				slog.Int64("duration_ms", elapsed.Milliseconds()),
			}

			code := "ok"
			level, msg := slog.LevelInfo, "RPC ok"
			if err != nil {
				code = connect.CodeOf(err).String()
				level, msg = rpcErrorLevel(err), "RPC error"
				attrs = append(attrs, slog.String("code", code), slog.String("error", errorMessage(err)))
			}
			slog.LogAttrs(ctx, level, msg, attrs...)
			metrics.RecordRPC(procedure, code, elapsed)

			return resp, err
		}
	}
}

func rpcErrorLevel(err error) slog.Level {
	switch connect.CodeOf(err) {
	case connect.CodeInternal, connect.CodeUnknown, connect.CodeDataLoss:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// errorMessage drops the code prefix connect.Error adds to Error().
func errorMessage(err error) string {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr.Message()
	}
	return err.Error()
}
