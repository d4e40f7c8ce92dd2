package http

import (
	"github.com/gin-gonic/gin"

	"python-docs-copilot/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Only the chat endpoint is rate limited; history and language
// management stay cheap and unmetered.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.RateLimit(), h.Chat)
	rg.DELETE("/chat/history", h.ClearHistory)
	rg.GET("/languages", h.Languages)
}
