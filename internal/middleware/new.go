package middleware

import (
	"smart-task-assistant/pkg/log"
)

// Middleware bundles the cross-cutting HTTP middlewares: request scoping
// and per-client rate limiting.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, rateLimitPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(rateLimitPerMin),
	}
}
