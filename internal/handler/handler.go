package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vishnukant5129/AI-vs-Real-Image/internal/forensics"
	"github.com/vishnukant5129/AI-vs-Real-Image/internal/service"
)

type Handler struct {
	service service.AnalysisService
	log     *zap.Logger
}

func NewHandler(service service.AnalysisService, log *zap.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

func (h *Handler) AnalyzeImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}

	opened, err := file.Open()
	if err != nil {
		h.log.Error("Failed to open uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process file"})
		return
	}
	defer opened.Close()

	fileBytes, err := io.ReadAll(opened)
	if err != nil {
		h.log.Error("Failed to read uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}

	contentType := file.Header.Get("Content-Type")

	result, err := h.service.Analyze(c.Request.Context(), fileBytes, file.Filename, contentType)
	if err != nil {
		h.respondAnalysisError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// respondAnalysisError maps the pipeline's error kinds onto distinct
// HTTP statuses so clients can tell a rejected upload from a corrupt one.
func (h *Handler) respondAnalysisError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, forensics.ErrTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Image too large"})
	case errors.Is(err, forensics.ErrUnsupportedFormat):
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Unsupported image format. Only JPEG, PNG and WebP are accepted"})
	case errors.Is(err, forensics.ErrDecodeFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Image could not be decoded"})
	default:
		h.log.Error("Analysis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze image"})
	}
}

func (h *Handler) GetHistory(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	c.JSON(http.StatusOK, h.service.History(c.Request.Context(), limit))
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
