package http

import (
	"github.com/gin-gonic/gin"

	"aria-assistant/internal/middleware"
	"aria-assistant/pkg/response"
)

// Handle godoc
// @Summary     Handle a natural-language message
// @Description Classifies the message, extracts entities and dispatches the resulting action. Low-confidence or incomplete messages come back as clarification requests.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    false "Caller identity"
// @Param       body      body   handleReq true  "Message"
// @Success     200 {object} handleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Handle(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHandleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Handle(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Handle: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newHandleResp(output))
}
