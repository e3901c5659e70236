package logger

import (
	"context"
	"time"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
)

// requestInterceptor logs one line per handled RPC and puts a
// procedure-scoped logger in the handler context.
type requestInterceptor struct {
	log zerolog.Logger
	now func() time.Time
}

// RequestInterceptor returns a connect interceptor that logs procedure,
// duration and result code of every handled call.
func RequestInterceptor(l zerolog.Logger) connect.Interceptor {
	return requestInterceptor{log: l, now: time.Now}
}

func (i requestInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		if req.Spec().IsClient {
			return next(ctx, req)
		}
		start := i.now()
		l := i.log.With().Str("procedure", req.Spec().Procedure).Logger()
		resp, err := next(WithContext(ctx, l), req)
		i.logResult(l, start, err)
		return resp, err
	}
}

func (i requestInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

func (i requestInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		start := i.now()
		l := i.log.With().Str("procedure", conn.Spec().Procedure).Logger()
		err := next(WithContext(ctx, l), conn)
		i.logResult(l, start, err)
		return err
	}
}

func (i requestInterceptor) logResult(l zerolog.Logger, start time.Time, err error) {
	duration := i.now().Sub(start)
	if err == nil {
		l.Info().Dur("duration", duration).Str("code", "ok").Msg("rpc")
		return
	}

	code := connect.CodeOf(err)
	ev := l.Warn()
	if isServerFault(code) {
		ev = l.Error()
	}
	ev.Dur("duration", duration).Str("code", code.String()).Err(err).Msg("rpc")
}

func isServerFault(code connect.Code) bool {
	switch code {
	case connect.CodeInternal, connect.CodeUnknown, connect.CodeDataLoss, connect.CodeUnavailable:
		return true
	}
	return false
}
