package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/himakom/orgadmin_backend/internal/core/ports/services"
	"github.com/himakom/orgadmin_backend/internal/middleware"
	"github.com/himakom/orgadmin_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer, fileStore portssvc.FileStore) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rate := limiter.Rate{Period: cfg.RateLimitPeriod, Limit: cfg.RateLimitRequests}
	publicLimiter := limiter.New(memory.NewStore(), rate)

	registerAuthRoutes(r, cfg, services, publicLimiter)
	registerPublicApplicationRoutes(r, services.Application, publicLimiter)

	setupAPIV1Routes(r, cfg, services, fileStore)
}

// setupAPIV1Routes configures the authenticated /api/v1 group and delegates
// to the per-entity route registrations.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer, fileStore portssvc.FileStore) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User)
	registerMemberRoutes(v1, services.Member)
	registerEventRoutes(v1, services.Event, services.Attendance)
	registerAttendanceRoutes(v1, services.Attendance)
	registerFinanceRoutes(v1, services.Finance, services.Audit)
	registerReportingRoutes(v1, services.Reporting)
	registerApplicationRoutes(v1, services.Application)
	registerAgendaRoutes(v1, services.Agenda)
	registerLetterRoutes(v1, services.Letter)
	registerFileRoutes(v1, fileStore)
}
