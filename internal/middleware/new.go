package middleware

import (
	"python-docs-copilot/internal/ratelimit"
	"python-docs-copilot/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *ratelimit.Limiter
}

func New(l log.Logger, limiter *ratelimit.Limiter) Middleware {
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
