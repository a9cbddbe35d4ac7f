package middleware

import (
	"context"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/raspberrycoffee/onboarding-backend/domain"
)

// SessionKey is the fasthttp user-value the resolved session is stored under.
const SessionKey = "session"

// SessionResolver looks up a live session by id, typically the auth use case.
type SessionResolver interface {
	Session(ctx context.Context, sessionID string) (*domain.Session, error)
}

// SessionAuth verifies the bearer token, resolves the referenced session and
// attaches it to the request. Requests without a live session are rejected.
func SessionAuth(secret string, sessions SessionResolver, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			tokenString := extractToken(ctx)
			if tokenString == "" {
				ctx.SetStatusCode(fasthttp.StatusUnauthorized)
				return
			}

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("invalid session token", zap.Error(err))
				ctx.SetStatusCode(fasthttp.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				ctx.SetStatusCode(fasthttp.StatusUnauthorized)
				return
			}
			sessionID, _ := claims["session_id"].(string)
			if sessionID == "" {
				ctx.SetStatusCode(fasthttp.StatusUnauthorized)
				return
			}

			session, err := sessions.Session(ctx, sessionID)
			if err != nil {
				ctx.SetStatusCode(fasthttp.StatusUnauthorized)
				return
			}

			ctx.SetUserValue(SessionKey, session)
			next(ctx)
		}
	}
}

// RequireRole rejects requests whose session does not carry the given role.
// Employee mutations are admin-only; the portal is employee-only.
func RequireRole(role domain.SessionRole) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			session := SessionFromRequest(ctx)
			if session == nil || session.Role != role {
				ctx.SetStatusCode(fasthttp.StatusForbidden)
				return
			}
			next(ctx)
		}
	}
}

// SessionFromRequest returns the session attached by SessionAuth, if any.
func SessionFromRequest(ctx *fasthttp.RequestCtx) *domain.Session {
	session, _ := ctx.UserValue(SessionKey).(*domain.Session)
	return session
}

func extractToken(ctx *fasthttp.RequestCtx) string {
	header := string(ctx.Request.Header.Peek("Authorization"))
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return header
}
