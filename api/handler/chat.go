package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/raspberrycoffee/onboarding-backend/api/transport"
	"github.com/raspberrycoffee/onboarding-backend/domain"
	"github.com/raspberrycoffee/onboarding-backend/pkg/httpcontext"
	chatUC "github.com/raspberrycoffee/onboarding-backend/usecase/chat"
)

type ChatHandler struct {
	baseHandler
	uc *chatUC.UseCase
}

func NewChatHandler(uc *chatUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Ask the onboarding assistant
// @Tags chat
// @Router /api/v1/chat [post]
func (h *ChatHandler) Ask(ctx *fasthttp.RequestCtx) {
	var req transport.ChatRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	turns := make([]chatUC.Turn, 0, len(req.Messages))
	for _, msg := range req.Messages {
		turns = append(turns, chatUC.Turn{Role: msg.Role, Content: msg.Content})
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	response, err := h.uc.Ask(stdCtx, turns)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"response": response,
	})
}
