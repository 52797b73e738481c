package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"aria-assistant/internal/chat"
	"aria-assistant/pkg/response"
)

// respondError translates domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
