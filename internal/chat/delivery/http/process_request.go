package http

import "github.com/gin-gonic/gin"

// processHandleReq binds and validates the chat request body.
func (h *handler) processHandleReq(c *gin.Context) (handleReq, error) {
	var req handleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
