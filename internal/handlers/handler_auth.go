package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	portssvc "github.com/himakom/orgadmin_backend/internal/core/ports/services"
	"github.com/himakom/orgadmin_backend/internal/dto"
	"github.com/himakom/orgadmin_backend/internal/middleware"
	"github.com/himakom/orgadmin_backend/internal/platform/config"
)

const refreshTokenCookie = "rtid"

// authHandler handles login, token refresh and logout.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	isProduction bool
}

func newAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{
		userService:  us,
		tokenService: ts,
		isProduction: cfg.IsProduction,
	}
}

// registerAuthRoutes sets up the public authentication routes. Login and
// refresh sit behind the shared rate limiter.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer, ipLimiter *limiter.Limiter) {
	h := newAuthHandler(services.User, services.Token, cfg)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.login)
		auth.POST("/refresh", middleware.RateLimit(ipLimiter), h.refresh)
		auth.POST("/logout", middleware.AuthMiddleware(cfg.JWTSecret), h.logout)
	}
}

func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// One message for both unknown username and wrong password.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	refreshToken, refreshExpiry, err := h.tokenService.GenerateAndStoreRefreshToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate refresh token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	h.setRefreshCookie(c, refreshToken, refreshExpiry)

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	})
}

func (h *authHandler) refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	rawToken, err := c.Cookie(refreshTokenCookie)
	if err != nil || rawToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token missing"})
		return
	}

	user, err := h.tokenService.ValidateRefreshToken(c.Request.Context(), req.UserID, rawToken)
	if err != nil {
		logger.Warn("Refresh token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	// Rotation: every successful refresh replaces the stored hash.
	refreshToken, refreshExpiry, err := h.tokenService.GenerateAndStoreRefreshToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to rotate refresh token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	h.setRefreshCookie(c, refreshToken, refreshExpiry)

	c.JSON(http.StatusOK, dto.RefreshResponse{Token: token, ExpiresAt: expiresAt})
}

func (h *authHandler) logout(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.tokenService.ClearRefreshToken(c.Request.Context(), actor.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.SetCookie(refreshTokenCookie, "", -1, "/api/v1/auth", "", h.isProduction, true)
	c.Status(http.StatusNoContent)
}

func (h *authHandler) setRefreshCookie(c *gin.Context, token string, expiry time.Time) {
	maxAge := int(time.Until(expiry).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	c.SetCookie(refreshTokenCookie, token, maxAge, "/api/v1/auth", "", h.isProduction, true)
}
