package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
	portssvc "github.com/himakom/orgadmin_backend/internal/core/ports/services"
	"github.com/himakom/orgadmin_backend/internal/dto"
)

// letterHandler handles HTTP requests related to correspondence.
type letterHandler struct {
	letterService portssvc.LetterSvcFacade
}

func newLetterHandler(ls portssvc.LetterSvcFacade) *letterHandler {
	return &letterHandler{letterService: ls}
}

// registerLetterRoutes registers all letter-related routes.
func registerLetterRoutes(rg *gin.RouterGroup, letterService portssvc.LetterSvcFacade) {
	h := newLetterHandler(letterService)

	letters := rg.Group("/letters")
	{
		letters.POST("", h.createLetter)
		letters.GET("", h.listLetters)
		letters.GET("/:id", h.getLetter)
		letters.PUT("/:id", h.updateLetter)
		letters.DELETE("/:id", h.deleteLetter)
		letters.PUT("/:id/file", h.attachFile)
	}
}

func (h *letterHandler) createLetter(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	letter, err := h.letterService.CreateLetter(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToLetterResponse(letter))
}

func (h *letterHandler) getLetter(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	letter, err := h.letterService.GetLetterByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToLetterResponse(letter))
}

func (h *letterHandler) listLetters(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var params dto.ListLettersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	letters, err := h.letterService.ListLetters(c.Request.Context(), actor, domain.LetterDirection(params.Direction), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"letters": dto.ToLetterListResponse(letters)})
}

func (h *letterHandler) updateLetter(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	letter, err := h.letterService.UpdateLetter(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToLetterResponse(letter))
}

func (h *letterHandler) deleteLetter(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if err := h.letterService.DeleteLetter(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *letterHandler) attachFile(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
		return
	}
	defer file.Close()

	letter, err := h.letterService.AttachFile(c.Request.Context(), actor, c.Param("id"), fileHeader.Filename, file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToLetterResponse(letter))
}
