package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
	portssvc "github.com/himakom/orgadmin_backend/internal/core/ports/services"
)

// fileHandler serves stored uploads (member photos, evidence files, letter
// attachments) back to authenticated clients.
type fileHandler struct {
	store portssvc.FileStore
}

// registerFileRoutes registers the download route for stored files.
func registerFileRoutes(rg *gin.RouterGroup, store portssvc.FileStore) {
	h := &fileHandler{store: store}
	rg.GET("/files/*path", h.download)
}

func (h *fileHandler) download(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	if !actor.Role.Can(domain.CapViewReports) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	// Stored paths are always namespace/filename; anything that escapes
	// that shape is treated as not found.
	rel := filepath.Clean(strings.TrimPrefix(c.Param("path"), "/"))
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") || filepath.IsAbs(rel) {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}

	c.File(h.store.Resolve(rel))
}
