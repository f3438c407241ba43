package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/ShiftWise/shiftwise_app/internal/core/ports/services"
	"github.com/ShiftWise/shiftwise_app/internal/dto"
	"github.com/ShiftWise/shiftwise_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles the employee directory routes.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.POST("", h.createUser)
		users.GET("", h.listUsers)
		users.GET("/:id", h.getUser)
	}
}

func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, storeID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateUser", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), storeID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	logger.Info("Directory user created", slog.String("created_user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *userHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	_, storeID, ok := callerIdentity(c)
	if !ok {
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), storeID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
}

func (h *userHandler) getUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	_, storeID, ok := callerIdentity(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), storeID, c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
