package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/raspberrycoffee/onboarding-backend/api/transport"
	"github.com/raspberrycoffee/onboarding-backend/domain"
	"github.com/raspberrycoffee/onboarding-backend/internal/middleware"
	"github.com/raspberrycoffee/onboarding-backend/pkg/httpcontext"
	portalUC "github.com/raspberrycoffee/onboarding-backend/usecase/portal"
)

type PortalHandler struct {
	baseHandler
	uc *portalUC.UseCase
}

func NewPortalHandler(uc *portalUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *PortalHandler {
	return &PortalHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Employee profile
// @Tags portal
// @Router /api/v1/portal/profile [get]
func (h *PortalHandler) Profile(ctx *fasthttp.RequestCtx) {
	session := middleware.SessionFromRequest(ctx)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	employee, err := h.uc.Profile(stdCtx, session)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.NewProfileView(employee))
}

// @Summary Onboarding checklist
// @Tags portal
// @Router /api/v1/portal/checklist [get]
func (h *PortalHandler) Checklist(ctx *fasthttp.RequestCtx) {
	session := middleware.SessionFromRequest(ctx)

	checklist, err := h.uc.Checklist(session)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, checklist)
}

// @Summary Toggle a checklist item
// @Tags portal
// @Router /api/v1/portal/checklist/{id}/toggle [post]
func (h *PortalHandler) ToggleChecklistItem(ctx *fasthttp.RequestCtx) {
	session := middleware.SessionFromRequest(ctx)
	itemID, _ := ctx.UserValue("id").(string)

	checklist, err := h.uc.ToggleChecklistItem(session, itemID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, checklist)
}

// @Summary Integration statuses
// @Tags portal
// @Router /api/v1/portal/integrations [get]
func (h *PortalHandler) Integrations(ctx *fasthttp.RequestCtx) {
	session := middleware.SessionFromRequest(ctx)

	set, summary, err := h.uc.Integrations(session)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, integrationPayload(set, summary))
}

// @Summary Apply an integration action
// @Tags portal
// @Router /api/v1/portal/integrations/{name}/{action} [post]
func (h *PortalHandler) ApplyIntegrationAction(ctx *fasthttp.RequestCtx) {
	session := middleware.SessionFromRequest(ctx)
	name, _ := ctx.UserValue("name").(string)
	action, _ := ctx.UserValue("action").(string)

	set, summary, err := h.uc.ApplyIntegrationAction(session, name, action)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, integrationPayload(set, summary))
}

func integrationPayload(set domain.IntegrationSet, summary domain.IntegrationSummary) map[string]interface{} {
	type integrationView struct {
		domain.IntegrationStatus
		Actions []string `json:"actions"`
	}

	views := make([]integrationView, 0, len(set.Items))
	for _, item := range set.Items {
		views = append(views, integrationView{
			IntegrationStatus: item,
			Actions:           item.Actions(),
		})
	}
	return map[string]interface{}{
		"integrations": views,
		"summary":      summary,
	}
}
