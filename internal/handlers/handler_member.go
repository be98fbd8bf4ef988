package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/himakom/orgadmin_backend/internal/core/ports/services"
	"github.com/himakom/orgadmin_backend/internal/dto"
)

// memberHandler handles HTTP requests related to members.
type memberHandler struct {
	memberService portssvc.MemberSvcFacade
}

func newMemberHandler(ms portssvc.MemberSvcFacade) *memberHandler {
	return &memberHandler{memberService: ms}
}

// registerMemberRoutes registers all member-related routes.
func registerMemberRoutes(rg *gin.RouterGroup, memberService portssvc.MemberSvcFacade) {
	h := newMemberHandler(memberService)

	members := rg.Group("/members")
	{
		members.POST("", h.createMember)
		members.GET("", h.listMembers)
		members.GET("/export", h.exportMembers)
		members.GET("/:id", h.getMember)
		members.PUT("/:id", h.updateMember)
		members.DELETE("/:id", h.deleteMember)
		members.PUT("/:id/photo", h.updateMemberPhoto)
	}
}

func (h *memberHandler) createMember(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	member, err := h.memberService.CreateMember(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

func (h *memberHandler) getMember(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	member, err := h.memberService.GetMemberByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

func (h *memberHandler) listMembers(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var params dto.ListMembersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	members, err := h.memberService.ListMembers(c.Request.Context(), actor, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListMembersResponse(members))
}

func (h *memberHandler) updateMember(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	member, err := h.memberService.UpdateMember(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

func (h *memberHandler) deleteMember(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.memberService.DeleteMember(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *memberHandler) exportMembers(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	report, err := h.memberService.ExportMembersXLSX(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="members.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, report)
}

func (h *memberHandler) updateMemberPhoto(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
		return
	}
	defer file.Close()

	member, err := h.memberService.UpdateMemberPhoto(c.Request.Context(), actor, c.Param("id"), fileHeader.Filename, file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}
