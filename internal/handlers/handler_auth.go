package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ShiftWise/shiftwise_app/internal/apperrors"
	portssvc "github.com/ShiftWise/shiftwise_app/internal/core/ports/services"
	"github.com/ShiftWise/shiftwise_app/internal/dto"
	"github.com/ShiftWise/shiftwise_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// authHandler handles credential exchange for the public login route.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes registers the unauthenticated login endpoint. Login is
// rate limited per client IP to slow down credential stuffing.
func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService)

	loginLimiter := limiter.New(memory.NewStore(), limiter.Rate{
		Period: time.Minute,
		Limit:  5,
	})

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(loginLimiter), h.login)
	}
}

func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		// Bad credentials are a 401 here, not the generic 403 mapping.
		if errors.Is(err, apperrors.ErrForbidden) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
