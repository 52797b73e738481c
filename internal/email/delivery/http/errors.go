package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"aria-assistant/internal/email"
	"aria-assistant/pkg/response"
)

// respondError translates domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, email.ErrRecipientRequired),
		errors.Is(err, email.ErrInvalidRecipient),
		errors.Is(err, email.ErrSubjectRequired),
		errors.Is(err, email.ErrBodyRequired):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
