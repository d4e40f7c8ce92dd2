package http

import (
	"github.com/gin-gonic/gin"

	"python-docs-copilot/internal/middleware"
	"python-docs-copilot/internal/model"
)

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// scopeFrom builds the request scope from the session header and an
// optional language override in the body.
func scopeFrom(c *gin.Context, languageOverride string) model.Scope {
	return model.Scope{
		SessionID: c.GetHeader(middleware.SessionHeader),
		Language:  languageOverride,
	}
}
