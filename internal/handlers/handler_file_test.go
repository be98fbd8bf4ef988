package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/himakom/orgadmin_backend/internal/core/domain"
	"github.com/himakom/orgadmin_backend/internal/filestore"
	"github.com/himakom/orgadmin_backend/internal/middleware"
)

func newFileTestRouter(t *testing.T, role domain.Role) (*gin.Engine, *filestore.LocalStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := filestore.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		ctx := middleware.ContextWithActor(c.Request.Context(), domain.Actor{UserID: "u1", Role: role})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})
	registerFileRoutes(r.Group("/api/v1"), store)
	return r, store
}

func TestDownloadFile_ServesStoredUpload(t *testing.T) {
	r, store := newFileTestRouter(t, domain.RoleSecretary1)

	path, err := store.Store("letters", "note.pdf", strings.NewReader("letter body"))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/files/"+path, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "letter body", w.Body.String())
}

func TestDownloadFile_TraversalIsNotFound(t *testing.T) {
	r, _ := newFileTestRouter(t, domain.RoleSecretary1)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/files/..%2F..%2Fetc%2Fpasswd", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownloadFile_UnknownRoleForbidden(t *testing.T) {
	r, store := newFileTestRouter(t, domain.Role("GHOST"))

	path, err := store.Store("letters", "note.pdf", strings.NewReader("letter body"))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/files/"+path, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
