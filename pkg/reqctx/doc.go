// Package reqctx provides centralized request context management.
//
// This package is the single source of truth for request-scoped
// metadata: the request id, client address, user agent and receipt
// time that HTTP middleware attaches to every request.
//
// # Context Keys
//
// All context keys are private unexported types to prevent collisions.
// Access is provided through type-safe getter and setter functions.
//
// # Usage
//
// Setting values (typically in middleware):
//
//	ctx = reqctx.WithRequestMeta(ctx, &reqctx.RequestMeta{
//	    RequestID:   "abc-123",
//	    ClientIP:    "192.168.1.1",
//	    UserAgent:   "Mozilla/5.0",
//	    RequestedAt: time.Now(),
//	})
//
// Getting values (in handlers, services, etc.):
//
//	meta, ok := reqctx.RequestMetaFromContext(ctx)
//	id := reqctx.RequestIDFromContext(ctx)
//
// # Contracts
//
// RequestMeta is always set by HTTP middleware for all requests.
package reqctx
