package logger

import "context"

type logCtxKey struct{}

var tracerKey = logCtxKey{}

// Tracer is request-scoped data carried through context so every log line of
// one request shares the same trace id.
type Tracer struct {
	RemoteAddr string `json:"remote_addr,omitempty"`
	AppTraceID string `json:"app_trace_id,omitempty"`
}

// Inject puts Tracer into context.
func Inject(ctx context.Context, tracer Tracer) context.Context {
	return context.WithValue(ctx, tracerKey, tracer)
}

// Extract gets Tracer information from context.
func Extract(ctx context.Context) (Tracer, bool) {
	tracer, ok := ctx.Value(tracerKey).(Tracer)
	if !ok {
		return Tracer{}, false
	}

	return tracer, ok
}
