package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
	portssvc "github.com/himakom/orgadmin_backend/internal/core/ports/services"
	"github.com/himakom/orgadmin_backend/internal/dto"
	"github.com/himakom/orgadmin_backend/internal/middleware"
)

// applicationHandler handles membership application requests.
type applicationHandler struct {
	applicationService portssvc.ApplicationSvcFacade
}

func newApplicationHandler(as portssvc.ApplicationSvcFacade) *applicationHandler {
	return &applicationHandler{applicationService: as}
}

// registerPublicApplicationRoutes exposes the unauthenticated submission
// endpoint behind the shared rate limiter.
func registerPublicApplicationRoutes(r *gin.Engine, applicationService portssvc.ApplicationSvcFacade, ipLimiter *limiter.Limiter) {
	h := newApplicationHandler(applicationService)
	r.POST("/api/v1/applications", middleware.RateLimit(ipLimiter), h.submitApplication)
}

// registerApplicationRoutes registers the authenticated review routes.
func registerApplicationRoutes(rg *gin.RouterGroup, applicationService portssvc.ApplicationSvcFacade) {
	h := newApplicationHandler(applicationService)

	applications := rg.Group("/applications")
	{
		applications.GET("", h.listApplications)
		applications.GET("/:id", h.getApplication)
		applications.POST("/:id/approve", h.approveApplication)
		applications.POST("/:id/reject", h.rejectApplication)
	}
}

func (h *applicationHandler) submitApplication(c *gin.Context) {
	var req dto.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	app, err := h.applicationService.SubmitApplication(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToApplicationResponse(app))
}

func (h *applicationHandler) getApplication(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	app, err := h.applicationService.GetApplicationByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToApplicationResponse(app))
}

func (h *applicationHandler) listApplications(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var params dto.ListApplicationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	apps, err := h.applicationService.ListApplications(c.Request.Context(), actor, domain.ApplicationStatus(params.Status), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": dto.ToApplicationListResponse(apps)})
}

func (h *applicationHandler) approveApplication(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	member, err := h.applicationService.ApproveApplication(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

func (h *applicationHandler) rejectApplication(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.RejectApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.applicationService.RejectApplication(c.Request.Context(), actor, c.Param("id"), req.Note); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
