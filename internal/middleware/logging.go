package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor writes one log line per handled call with the procedure,
// the caller (blank before login), the elapsed milliseconds and, on failure,
// the Connect code and message. See callLevel for the level chosen.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			attrs := []slog.Attr{
				slog.String("procedure", req.Spec().Procedure),
				slog.String("user_id", GetUserID(ctx)),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			}
			msg := "RPC ok"
			if err != nil {
				msg = "RPC error"
				var connectErr *connect.Error
				if errors.As(err, &connectErr) {
					attrs = append(attrs,
						slog.String("code", connectErr.Code().String()),
						slog.String("error", connectErr.Message()),
					)
				} else {
					attrs = append(attrs, slog.Any("error", err))
				}
			}
			slog.LogAttrs(ctx, callLevel(err), msg, attrs...)

			return resp, err
		}
	}
}

// callLevel is INFO for success, WARN for errors the caller caused and ERROR
// for internal or uncoded failures.
func callLevel(err error) slog.Level {
	if err == nil {
		return slog.LevelInfo
	}
	switch connect.CodeOf(err) {
	case connect.CodeInternal, connect.CodeUnknown, connect.CodeDataLoss, connect.CodeUnavailable:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
