package respbuilder

import "context"

// context keys use concrete type struct{} to avoid allocating on every inject.
type respCtxKey struct{}

var respTracerKey = respCtxKey{}

type Tracer struct {
	RemoteAddr string
	AppTraceID string
}

// Inject injects Tracer object into context.
func Inject(ctx context.Context, tracer Tracer) context.Context {
	return context.WithValue(ctx, respTracerKey, tracer)
}

// Extract gets Tracer information from context.
func Extract(ctx context.Context) (Tracer, bool) {
	tracer, ok := ctx.Value(respTracerKey).(Tracer)
	if !ok {
		return Tracer{}, false
	}

	return tracer, ok
}

// MustExtract returns an empty Tracer instead of an error when none is set.
func MustExtract(ctx context.Context) Tracer {
	tracer, _ := Extract(ctx)
	return tracer
}
