package httpcontext

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	appLogger "github.com/raspberrycoffee/onboarding-backend/pkg/logger"
)

const requestIDHeader = "X-Request-ID"

type metaKey string

// Context keys for the request metadata attached by Attach.
const (
	KeyClientAddr metaKey = "client_addr"
	KeyUserAgent  metaKey = "user_agent"
)

// Adapter derives a stdlib context from a fasthttp request: a per-request
// timeout, a correlation id and the client metadata use cases may log.
type Adapter struct {
	timeout time.Duration
}

func NewAdapter(timeout time.Duration) *Adapter {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Adapter{timeout: timeout}
}

// Attach builds the request context. The correlation id is taken from the
// inbound X-Request-ID header when present and always echoed back on the
// response.
func (a *Adapter) Attach(reqCtx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)

	requestID := strings.TrimSpace(string(reqCtx.Request.Header.Peek(requestIDHeader)))
	if requestID == "" {
		requestID = uuid.NewString()
	}
	reqCtx.Response.Header.Set(requestIDHeader, requestID)
	ctx = appLogger.ContextWithRequestID(ctx, requestID)

	if addr := reqCtx.RemoteAddr(); addr != nil {
		ctx = context.WithValue(ctx, KeyClientAddr, addr.String())
	}
	if agent := string(reqCtx.Request.Header.UserAgent()); agent != "" {
		ctx = context.WithValue(ctx, KeyUserAgent, agent)
	}

	return ctx, cancel
}
