package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/himakom/orgadmin_backend/internal/core/ports/services"
	"github.com/himakom/orgadmin_backend/internal/dto"
)

// attendanceHandler handles HTTP requests related to attendance records.
type attendanceHandler struct {
	attendanceService portssvc.AttendanceSvcFacade
}

func newAttendanceHandler(as portssvc.AttendanceSvcFacade) *attendanceHandler {
	return &attendanceHandler{attendanceService: as}
}

// registerAttendanceRoutes registers attendance record routes.
func registerAttendanceRoutes(rg *gin.RouterGroup, attendanceService portssvc.AttendanceSvcFacade) {
	h := newAttendanceHandler(attendanceService)

	attendance := rg.Group("/attendance")
	{
		attendance.POST("", h.createRecord)
		attendance.GET("/:id", h.getRecord)
		attendance.PUT("/:id", h.updateRecord)
		attendance.DELETE("/:id", h.deleteRecord)
	}

	// Per-member attendance history.
	rg.GET("/members/:id/attendance", h.listMemberAttendance)
}

func (h *attendanceHandler) createRecord(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	record, err := h.attendanceService.CreateRecord(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAttendanceResponse(record))
}

func (h *attendanceHandler) getRecord(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	record, err := h.attendanceService.GetRecordByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAttendanceResponse(record))
}

func (h *attendanceHandler) updateRecord(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	record, err := h.attendanceService.UpdateRecord(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAttendanceResponse(record))
}

func (h *attendanceHandler) deleteRecord(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.attendanceService.DeleteRecord(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *attendanceHandler) listMemberAttendance(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	records, err := h.attendanceService.ListRecordsByMember(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": dto.ToAttendanceListResponse(records)})
}
