package http

import (
	"github.com/gin-gonic/gin"

	"aria-assistant/internal/middleware"
	"aria-assistant/pkg/response"
)

// Send godoc
// @Summary     Send an email
// @Description Sends a plain-text email through the configured Gmail account.
// @Tags        Emails
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string  false "Caller identity"
// @Param       body      body   sendReq true  "Email data"
// @Success     200 {object} sendResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/email/send [POST]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Send(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Send: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSendResp(output))
}
