package handler

import (
	"net/http"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/raspberrycoffee/onboarding-backend/internal/infrastructure/journal"
	"github.com/raspberrycoffee/onboarding-backend/pkg/httpcontext"
)

type ActivityHandler struct {
	baseHandler
	store *journal.Store
}

func NewActivityHandler(store *journal.Store, adapter *httpcontext.Adapter, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		baseHandler: newBaseHandler(adapter, logger),
		store:       store,
	}
}

// @Summary Recent admin activity
// @Tags activity
// @Router /api/v1/activity [get]
func (h *ActivityHandler) Recent(ctx *fasthttp.RequestCtx) {
	limit := 50
	if raw := string(ctx.QueryArgs().Peek("limit")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	entries, err := h.store.Recent(limit)
	if err != nil {
		h.logger.Error("activity read failed", zap.Error(err))
		h.respondError(ctx, err)
		return
	}

	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"entries": entries,
	})
}
