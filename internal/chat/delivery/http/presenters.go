package http

import "aria-assistant/internal/chat"

// --- Request DTOs ---

type handleReq struct {
	Message string `json:"message" binding:"required,min=1,max=2000"`
}

func (r handleReq) toInput() chat.HandleInput {
	return chat.HandleInput{Message: r.Message}
}

// --- Response DTOs ---

type handleResp struct {
	Response     string            `json:"response"`
	Action       string            `json:"action"`
	ActionResult chat.ActionResult `json:"action_result"`
}

func (h *handler) newHandleResp(out chat.HandleOutput) handleResp {
	return handleResp{
		Response:     out.Result.Message,
		Action:       out.Result.Type,
		ActionResult: out.Result,
	}
}
