package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/raspberrycoffee/onboarding-backend/api/transport"
	"github.com/raspberrycoffee/onboarding-backend/domain"
	"github.com/raspberrycoffee/onboarding-backend/pkg/httpcontext"
	appLogger "github.com/raspberrycoffee/onboarding-backend/pkg/logger"
	registryUC "github.com/raspberrycoffee/onboarding-backend/usecase/registry"
)

type EmployeeHandler struct {
	baseHandler
	uc *registryUC.UseCase
}

func NewEmployeeHandler(uc *registryUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List employees
// @Tags employees
// @Router /api/v1/employees [get]
func (h *EmployeeHandler) List(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	employees, err := h.uc.List(stdCtx)
	if err != nil {
		appLogger.WithRequestID(stdCtx, h.logger).Error("employee list failed", zap.Error(err))
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"employees": transport.NewEmployeeViews(employees),
	})
}

// @Summary Create employee
// @Tags employees
// @Router /api/v1/employees [post]
func (h *EmployeeHandler) Create(ctx *fasthttp.RequestCtx) {
	var req transport.CreateEmployeeRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "invalid payload", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, employees, err := h.uc.Create(stdCtx, domain.EmployeeInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Project:  req.Project,
		Role:     req.Role,
	})
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeUnavailable) {
			appLogger.WithRequestID(stdCtx, h.logger).Error("employee create failed", zap.Error(err))
		}
		h.respondError(ctx, err)
		return
	}

	h.respondSuccess(ctx, http.StatusCreated, map[string]interface{}{
		"employee":  transport.NewEmployeeView(*created),
		"employees": transport.NewEmployeeViews(employees),
	})
}

// @Summary Delete employee
// @Tags employees
// @Router /api/v1/employees/{id} [delete]
func (h *EmployeeHandler) Delete(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "employee id is required", nil))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	employees, err := h.uc.Delete(stdCtx, id)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeUnavailable) {
			appLogger.WithRequestID(stdCtx, h.logger).Error("employee delete failed", zap.String("id", id), zap.Error(err))
		}
		h.respondError(ctx, err)
		return
	}

	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"message":   "Employee deleted successfully",
		"employees": transport.NewEmployeeViews(employees),
	})
}
