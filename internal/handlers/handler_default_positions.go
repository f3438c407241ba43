package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ShiftWise/shiftwise_app/internal/core/domain"
	portssvc "github.com/ShiftWise/shiftwise_app/internal/core/ports/services"
	"github.com/ShiftWise/shiftwise_app/internal/dto"
	"github.com/ShiftWise/shiftwise_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// defaultPositionsHandler handles the per-store default position catalog.
type defaultPositionsHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

func newDefaultPositionsHandler(cs portssvc.CatalogSvcFacade) *defaultPositionsHandler {
	return &defaultPositionsHandler{catalogService: cs}
}

func registerDefaultPositionsRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := newDefaultPositionsHandler(catalogService)

	catalog := rg.Group("/default-positions")
	{
		catalog.POST("", h.upsertDefaultPositions)
		catalog.GET("", h.listOrGetDefaultPositions)
		catalog.DELETE("/:id", h.deleteDefaultPositions)
	}
}

func (h *defaultPositionsHandler) upsertDefaultPositions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, storeID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.UpsertDefaultPositionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertDefaultPositions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	set, err := h.catalogService.GetOrCreateDefaultPositions(c.Request.Context(), storeID, req, userID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDefaultPositionsResponse(set))
}

// listOrGetDefaultPositions returns the whole catalog, or a single entry when
// both weekday and period query parameters are supplied.
func (h *defaultPositionsHandler) listOrGetDefaultPositions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	_, storeID, ok := callerIdentity(c)
	if !ok {
		return
	}

	weekdayParam := c.Query("weekday")
	periodParam := c.Query("period")
	if weekdayParam == "" && periodParam == "" {
		sets, err := h.catalogService.ListDefaultPositions(c.Request.Context(), storeID)
		if err != nil {
			respondServiceError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToListDefaultPositionsResponse(sets))
		return
	}

	weekday, err := strconv.Atoi(weekdayParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weekday must be an integer between 0 and 6"})
		return
	}

	set, err := h.catalogService.GetDefaultPositions(c.Request.Context(), storeID, weekday, domain.LaborPeriod(periodParam))
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDefaultPositionsResponse(set))
}

func (h *defaultPositionsHandler) deleteDefaultPositions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	_, storeID, ok := callerIdentity(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteDefaultPositions(c.Request.Context(), storeID, c.Param("id")); err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
