package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/raspberrycoffee/onboarding-backend/api/transport"
	"github.com/raspberrycoffee/onboarding-backend/domain"
	"github.com/raspberrycoffee/onboarding-backend/pkg/httpcontext"
)

type baseHandler struct {
	adapter *httpcontext.Adapter
	logger  *zap.Logger
}

func newBaseHandler(adapter *httpcontext.Adapter, logger *zap.Logger) baseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return baseHandler{adapter: adapter, logger: logger}
}

func (h baseHandler) requestContext(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	if h.adapter != nil {
		return h.adapter.Attach(ctx)
	}
	return context.WithCancel(context.Background())
}

func (h baseHandler) respondJSON(ctx *fasthttp.RequestCtx, status int, payload transport.Envelope) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}

func (h baseHandler) respondSuccess(ctx *fasthttp.RequestCtx, status int, data interface{}) {
	h.respondJSON(ctx, status, transport.NewSuccess(data, nil))
}

// respondError maps domain errors to HTTP statuses. Store and completion
// failures are reported with a stable generic message; the detail has
// already been logged where the call failed.
func (h baseHandler) respondError(ctx *fasthttp.RequestCtx, err error) {
	status, code, message := mapError(err)
	h.respondJSON(ctx, status, transport.NewError(code, message, nil))
}

func mapError(err error) (int, string, string) {
	code := domain.CodeOf(err)
	switch code {
	case domain.ErrCodeUnauthorized:
		return http.StatusUnauthorized, string(code), domain.MessageOf(err)
	case domain.ErrCodeForbidden:
		return http.StatusForbidden, string(code), domain.MessageOf(err)
	case domain.ErrCodeInvalid:
		return http.StatusBadRequest, string(code), domain.MessageOf(err)
	case domain.ErrCodeNotFound:
		return http.StatusNotFound, string(code), domain.MessageOf(err)
	case domain.ErrCodeCompletion:
		return http.StatusBadGateway, string(code), domain.ErrCompletionFailed.Message
	default:
		// store failures and anything unclassified stay generic
		return http.StatusInternalServerError, string(domain.ErrCodeInternal), "Internal server error"
	}
}
