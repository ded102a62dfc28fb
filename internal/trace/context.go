package trace

import "context"

type requestIDKey struct{}

// WithRequestID attaches a request id to ctx for inclusion in subsequent
// trace log lines (see [Begin], [Op.End]).
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the request id attached to ctx via [WithRequestID],
// if any.
func RequestIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}
