package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/himakom/orgadmin_backend/internal/core/ports/services"
	"github.com/himakom/orgadmin_backend/internal/dto"
)

// eventHandler handles HTTP requests related to events.
type eventHandler struct {
	eventService      portssvc.EventSvcFacade
	attendanceService portssvc.AttendanceSvcFacade
}

func newEventHandler(es portssvc.EventSvcFacade, as portssvc.AttendanceSvcFacade) *eventHandler {
	return &eventHandler{eventService: es, attendanceService: as}
}

// registerEventRoutes registers event routes, including the nested
// per-event attendance listing.
func registerEventRoutes(rg *gin.RouterGroup, eventService portssvc.EventSvcFacade, attendanceService portssvc.AttendanceSvcFacade) {
	h := newEventHandler(eventService, attendanceService)

	events := rg.Group("/events")
	{
		events.POST("", h.createEvent)
		events.GET("", h.listEvents)
		events.GET("/:id", h.getEvent)
		events.PUT("/:id", h.updateEvent)
		events.DELETE("/:id", h.deleteEvent)
		events.GET("/:id/attendance", h.listEventAttendance)
	}
}

func (h *eventHandler) createEvent(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *eventHandler) getEvent(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	event, err := h.eventService.GetEventByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *eventHandler) listEvents(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var params dto.ListEventsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	events, err := h.eventService.ListEvents(c.Request.Context(), actor, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.EventResponse, len(events))
	for i := range events {
		out[i] = dto.ToEventResponse(&events[i])
	}
	c.JSON(http.StatusOK, gin.H{"events": out})
}

func (h *eventHandler) updateEvent(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *eventHandler) deleteEvent(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.eventService.DeleteEvent(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *eventHandler) listEventAttendance(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	records, err := h.attendanceService.ListRecordsByEvent(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": dto.ToAttendanceListResponse(records)})
}
