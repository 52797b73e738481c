package http

import (
	"github.com/gin-gonic/gin"

	"aria-assistant/internal/middleware"
	"aria-assistant/pkg/response"
)

// Create godoc
// @Summary     Create a new event
// @Description Creates a calendar event for the calling user. Duration defaults to 60 minutes.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    false "Caller identity"
// @Param       body      body   createReq true  "Event data"
// @Success     200 {object} eventDetailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newEventDetailResp(output))
}

// List godoc
// @Summary     List events
// @Description Returns the calling user's events within an optional scope window.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string false "Caller identity"
// @Param       scope  query string false "Window: all, today, tomorrow, week"
// @Param       limit  query int    false "Page size (default: 50)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get event detail
// @Description Returns a single event by its ID.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string false "Caller identity"
// @Param       id path string true "Event ID"
// @Success     200 {object} eventDetailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	output, err := h.uc.Detail(ctx, middleware.ScopeFromContext(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newEventDetailResp(output))
}

// Delete godoc
// @Summary     Delete an event
// @Description Removes an event and its Google Calendar mirror when one exists.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string false "Caller identity"
// @Param       id path string true "Event ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	if err := h.uc.Delete(ctx, middleware.ScopeFromContext(c), id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
