package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/ShiftWise/shiftwise_app/internal/core/ports/services"
	"github.com/ShiftWise/shiftwise_app/internal/dto"
	"github.com/ShiftWise/shiftwise_app/internal/middleware"
	"github.com/ShiftWise/shiftwise_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// scheduleHandler handles HTTP requests for schedule documents.
type scheduleHandler struct {
	scheduleService portssvc.ScheduleSvcFacade
}

func newScheduleHandler(ss portssvc.ScheduleSvcFacade) *scheduleHandler {
	return &scheduleHandler{scheduleService: ss}
}

// registerScheduleRoutes registers schedule lifecycle, mutation, and import routes.
func registerScheduleRoutes(rg *gin.RouterGroup, cfg *config.Config, scheduleService portssvc.ScheduleSvcFacade, importService portssvc.ImportSvcFacade) {
	h := newScheduleHandler(scheduleService)
	ih := newImportHandler(importService, cfg)

	// The import endpoint does real file parsing; throttle it per client.
	importLimiter := limiter.New(memory.NewStore(), limiter.Rate{
		Period: time.Minute,
		Limit:  int64(cfg.ImportRatePerMinute),
	})

	schedules := rg.Group("/schedules")
	{
		schedules.POST("", h.createSchedule)
		schedules.GET("", h.listSchedules)
		schedules.GET("/templates", h.listTemplates)
		schedules.GET("/:id", h.getSchedule)
		schedules.PUT("/:id", h.updateSchedule)
		schedules.DELETE("/:id", h.deleteSchedule)
		schedules.POST("/:id/copy", h.copySchedule)
		schedules.POST("/:id/template", h.saveAsTemplate)

		schedules.POST("/:id/assign", h.assignEmployee)
		schedules.POST("/:id/positions", h.addPosition)
		schedules.PATCH("/:id/positions", h.updatePosition)
		schedules.POST("/:id/positions/delete", h.deletePosition)
		schedules.POST("/:id/blocks", h.addTimeBlock)
		schedules.PATCH("/:id/blocks", h.updateTimeBlock)
		schedules.POST("/:id/blocks/delete", h.deleteTimeBlock)

		schedules.POST("/:id/import", middleware.RateLimit(importLimiter), ih.importSpreadsheet)
	}
}

// callerIdentity pulls the authenticated user and store from the request
// context. A missing identity aborts with 401.
func callerIdentity(c *gin.Context) (userID, storeID string, ok bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, okUser := middleware.GetUserIDFromContext(c)
	storeID, okStore := middleware.GetStoreIDFromContext(c)
	if !okUser || !okStore {
		logger.Error("Caller identity not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", "", false
	}
	return userID, storeID, true
}

func (h *scheduleHandler) createSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, storeID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSchedule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	sched, err := h.scheduleService.CreateSchedule(c.Request.Context(), storeID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	logger.Info("Schedule created", slog.String("schedule_id", sched.ScheduleID))
	c.JSON(http.StatusCreated, dto.ToScheduleResponse(sched))
}

func (h *scheduleHandler) listSchedules(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	_, storeID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var params dto.ListSchedulesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	schedules, err := h.scheduleService.ListSchedules(c.Request.Context(), storeID, params)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListSchedulesResponse(schedules))
}

func (h *scheduleHandler) listTemplates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	_, storeID, ok := callerIdentity(c)
	if !ok {
		return
	}

	templates, err := h.scheduleService.ListTemplates(c.Request.Context(), storeID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListSchedulesResponse(templates))
}

func (h *scheduleHandler) getSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	_, storeID, ok := callerIdentity(c)
	if !ok {
		return
	}

	sched, err := h.scheduleService.GetSchedule(c.Request.Context(), storeID, c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToScheduleResponse(sched))
}

func (h *scheduleHandler) updateSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, storeID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSchedule", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	sched, err := h.scheduleService.UpdateSchedule(c.Request.Context(), storeID, c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToScheduleResponse(sched))
}

func (h *scheduleHandler) deleteSchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	_, storeID, ok := callerIdentity(c)
	if !ok {
		return
	}

	if err := h.scheduleService.DeleteSchedule(c.Request.Context(), storeID, c.Param("id")); err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *scheduleHandler) copySchedule(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, storeID, ok := callerIdentity(c)
	if !ok {
		return
	}

	// Every override is optional, so an empty body is a plain deep copy.
	var req dto.CopyScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	sched, err := h.scheduleService.CopySchedule(c.Request.Context(), storeID, c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToScheduleResponse(sched))
}

func (h *scheduleHandler) saveAsTemplate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, storeID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.SaveAsTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tmpl, err := h.scheduleService.SaveAsTemplate(c.Request.Context(), storeID, c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToScheduleResponse(tmpl))
}

func (h *scheduleHandler) assignEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, storeID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.AssignEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AssignEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	sched, err := h.scheduleService.AssignEmployee(c.Request.Context(), storeID, c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToScheduleResponse(sched))
}

func (h *scheduleHandler) addPosition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, storeID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.AddPositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	pos, err := h.scheduleService.AddPosition(c.Request.Context(), storeID, c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, pos)
}

func (h *scheduleHandler) updatePosition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, storeID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	pos, err := h.scheduleService.UpdatePosition(c.Request.Context(), storeID, c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, pos)
}

func (h *scheduleHandler) deletePosition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, storeID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.DeletePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.scheduleService.DeletePosition(c.Request.Context(), storeID, c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *scheduleHandler) addTimeBlock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, storeID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.AddTimeBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	block, err := h.scheduleService.AddTimeBlock(c.Request.Context(), storeID, c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, block)
}

func (h *scheduleHandler) updateTimeBlock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, storeID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateTimeBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	block, err := h.scheduleService.UpdateTimeBlock(c.Request.Context(), storeID, c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, block)
}

func (h *scheduleHandler) deleteTimeBlock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, storeID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.DeleteTimeBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.scheduleService.DeleteTimeBlock(c.Request.Context(), storeID, c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
