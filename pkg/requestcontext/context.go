// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values. Middleware sets them, services and handlers read
// them, and tests can inject them without running the middleware chain.
package requestcontext

import "context"

type callIDKey struct{}

// ContextKeyCallID is exported for tests that need context.WithValue.
var ContextKeyCallID = callIDKey{}

// CallID retrieves the correlation id that follows a request across NAV
// services. Empty if not set.
func CallID(ctx context.Context) string {
	if callID, ok := ctx.Value(ContextKeyCallID).(string); ok {
		return callID
	}
	return ""
}

// WithCallID injects a correlation id into the context.
func WithCallID(ctx context.Context, callID string) context.Context {
	return context.WithValue(ctx, ContextKeyCallID, callID)
}
