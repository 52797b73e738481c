package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"aria-assistant/internal/event"
	"aria-assistant/pkg/response"
)

// respondError translates domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, event.ErrEventNotFound):
		response.NotFound(c, err)
	case errors.Is(err, event.ErrTitleRequired),
		errors.Is(err, event.ErrStartTimeRequired):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
