package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	portssvc "github.com/ShiftWise/shiftwise_app/internal/core/ports/services"
	"github.com/ShiftWise/shiftwise_app/internal/middleware"
	"github.com/ShiftWise/shiftwise_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// importHandler handles roster spreadsheet uploads.
type importHandler struct {
	importService portssvc.ImportSvcFacade
	maxUploadMB   int64
}

func newImportHandler(is portssvc.ImportSvcFacade, cfg *config.Config) *importHandler {
	return &importHandler{importService: is, maxUploadMB: cfg.MaxUploadSizeMB}
}

func (h *importHandler) importSpreadsheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, storeID, ok := callerIdentity(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadMB<<20)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.Warn("Missing or oversized upload for ImportSpreadsheet", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "A spreadsheet must be uploaded in the 'file' form field"})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer src.Close()

	// The spreadsheet readers dispatch on the file extension, so the
	// temporary file keeps the one from the original upload name.
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	tmp, err := os.CreateTemp("", "roster-*"+ext)
	if err != nil {
		logger.Error("Failed to create temp file for upload", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		logger.Error("Failed to spool upload to disk", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	if err := tmp.Close(); err != nil {
		logger.Error("Failed to finalize temp file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}

	result, err := h.importService.ImportSpreadsheet(c.Request.Context(), storeID, c.Param("id"), tmp.Name(), fileHeader.Filename, userID)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	logger.Info("Roster import finished",
		slog.String("schedule_id", c.Param("id")),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped))
	c.JSON(http.StatusOK, result)
}
