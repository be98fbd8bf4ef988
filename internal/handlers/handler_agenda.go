package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
	portssvc "github.com/himakom/orgadmin_backend/internal/core/ports/services"
	"github.com/himakom/orgadmin_backend/internal/dto"
)

// agendaHandler handles HTTP requests related to schedule items.
type agendaHandler struct {
	agendaService portssvc.AgendaSvcFacade
}

func newAgendaHandler(as portssvc.AgendaSvcFacade) *agendaHandler {
	return &agendaHandler{agendaService: as}
}

// registerAgendaRoutes registers agenda routes. Status transitions run
// through their own endpoint.
func registerAgendaRoutes(rg *gin.RouterGroup, agendaService portssvc.AgendaSvcFacade) {
	h := newAgendaHandler(agendaService)

	agendas := rg.Group("/agendas")
	{
		agendas.POST("", h.createAgenda)
		agendas.GET("", h.listAgendas)
		agendas.GET("/:id", h.getAgenda)
		agendas.PUT("/:id", h.updateAgenda)
		agendas.PATCH("/:id/status", h.updateAgendaStatus)
		agendas.DELETE("/:id", h.deleteAgenda)
	}
}

func (h *agendaHandler) createAgenda(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateAgendaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	agenda, err := h.agendaService.CreateAgenda(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAgendaResponse(agenda))
}

func (h *agendaHandler) getAgenda(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	agenda, err := h.agendaService.GetAgendaByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAgendaResponse(agenda))
}

func (h *agendaHandler) listAgendas(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var params dto.ListAgendasParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	agendas, err := h.agendaService.ListAgendas(c.Request.Context(), actor, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"agendas": dto.ToAgendaListResponse(agendas)})
}

func (h *agendaHandler) updateAgenda(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateAgendaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	agenda, err := h.agendaService.UpdateAgenda(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAgendaResponse(agenda))
}

func (h *agendaHandler) updateAgendaStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateAgendaStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	agenda, err := h.agendaService.UpdateAgendaStatus(c.Request.Context(), actor, c.Param("id"), domain.AgendaStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAgendaResponse(agenda))
}

func (h *agendaHandler) deleteAgenda(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.agendaService.DeleteAgenda(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
