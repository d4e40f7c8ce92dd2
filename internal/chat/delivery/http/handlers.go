package http

import (
	"github.com/gin-gonic/gin"

	"python-docs-copilot/pkg/response"
)

// Chat godoc
// @Summary     Ask the documentation assistant
// @Description Answers a question about the supported Python libraries using retrieved documentation context. Tool calls and visual output are opt-in per request.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string  true "Session identifier"
// @Param       body         body   chatReq true "Chat message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Rate limit exceeded"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Chat(ctx, scopeFrom(c, req.Language), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		if knownError(err) {
			response.Error(c, err, nil)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// ClearHistory godoc
// @Summary     Clear conversation history
// @Description Drops all stored conversation turns for the calling session.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string true "Session identifier"
// @Success     200 {object} clearHistoryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/history [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.ClearHistory(ctx, scopeFrom(c, "")); err != nil {
		h.l.Errorf(ctx, "uc.ClearHistory: %v", err)
		if knownError(err) {
			response.Error(c, err, nil)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, clearHistoryResp{Cleared: true})
}

// Languages godoc
// @Summary     List supported languages
// @Description Returns the languages the assistant can converse in.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Success     200 {object} languagesResp
// @Router      /api/v1/languages [GET]
func (h *handler) Languages(c *gin.Context) {
	response.OK(c, languagesResp{Languages: h.uc.Languages(c.Request.Context())})
}
