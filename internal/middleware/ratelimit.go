package middleware

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"python-docs-copilot/pkg/response"
)

// SessionHeader carries the caller's session identity. Rate limiting
// and conversation history are both keyed on it.
const SessionHeader = "X-Session-ID"

var errSessionHeaderRequired = errors.New("X-Session-ID header is required")

// RateLimit enforces the per-session sliding window. The request is
// only recorded once it is admitted, so rejected calls do not extend
// the caller's penalty.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			response.Error(c, errSessionHeaderRequired, nil)
			c.Abort()
			return
		}

		allowed, made, remaining := m.limiter.IsAllowed(sessionID)
		if !allowed {
			wait := m.limiter.WaitTime(sessionID)
			m.l.Warnf(c.Request.Context(), "middleware: session %s rate limited, made=%d wait=%s", sessionID, made, wait)
			response.TooManyRequests(c, int(wait/time.Second))
			c.Abort()
			return
		}

		m.limiter.RecordRequest(sessionID)
		if remaining > 0 {
			c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining-1))
		}
		c.Next()
	}
}
