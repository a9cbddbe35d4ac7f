package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/raspberrycoffee/onboarding-backend/api/handler"
	"github.com/raspberrycoffee/onboarding-backend/domain"
	"github.com/raspberrycoffee/onboarding-backend/internal/middleware"
)

type Handlers struct {
	Auth     *apiHandler.AuthHandler
	Employee *apiHandler.EmployeeHandler
	Portal   *apiHandler.PortalHandler
	Chat     *apiHandler.ChatHandler
	Activity *apiHandler.ActivityHandler
	Health   *apiHandler.HealthHandler
}

type Middleware func(fasthttp.RequestHandler) fasthttp.RequestHandler

func New(handlers Handlers, sessionAuth Middleware) *router.Router {
	r := router.New()

	adminOnly := func(h fasthttp.RequestHandler) fasthttp.RequestHandler {
		return sessionAuth(middleware.RequireRole(domain.RoleAdmin)(h))
	}
	employeeOnly := func(h fasthttp.RequestHandler) fasthttp.RequestHandler {
		return sessionAuth(middleware.RequireRole(domain.RoleEmployee)(h))
	}

	r.GET("/health", handlers.Health.Check)

	// Session gate
	r.POST("/api/v1/auth/login", handlers.Auth.Login)
	r.POST("/api/v1/auth/admin", handlers.Auth.AdminAccess)
	r.POST("/api/v1/auth/logout", sessionAuth(handlers.Auth.Logout))

	// Admin dashboard
	r.GET("/api/v1/employees", adminOnly(handlers.Employee.List))
	r.POST("/api/v1/employees", adminOnly(handlers.Employee.Create))
	r.DELETE("/api/v1/employees/{id}", adminOnly(handlers.Employee.Delete))
	r.GET("/api/v1/activity", adminOnly(handlers.Activity.Recent))

	// Employee portal
	r.GET("/api/v1/portal/profile", employeeOnly(handlers.Portal.Profile))
	r.GET("/api/v1/portal/checklist", employeeOnly(handlers.Portal.Checklist))
	r.POST("/api/v1/portal/checklist/{id}/toggle", employeeOnly(handlers.Portal.ToggleChecklistItem))
	r.GET("/api/v1/portal/integrations", employeeOnly(handlers.Portal.Integrations))
	r.POST("/api/v1/portal/integrations/{name}/{action}", employeeOnly(handlers.Portal.ApplyIntegrationAction))

	// Onboarding assistant (any signed-in role)
	r.POST("/api/v1/chat", sessionAuth(handlers.Chat.Ask))

	return r
}
