package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/greencityconnect/waste-backend/internal/models"
	"github.com/greencityconnect/waste-backend/internal/services"
)

// WasteLogHandler handles waste logging HTTP requests
type WasteLogHandler struct {
	wasteLogService *services.WasteLogService
}

// NewWasteLogHandler creates a new WasteLogHandler
func NewWasteLogHandler(wasteLogService *services.WasteLogService) *WasteLogHandler {
	return &WasteLogHandler{
		wasteLogService: wasteLogService,
	}
}

// AddWasteLog handles POST /wastelogs
func (h *WasteLogHandler) AddWasteLog(c *gin.Context) {
	userID, ok := currentSubjectID(c)
	if !ok {
		return
	}

	var req struct {
		Type models.WasteType `json:"type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, fined, err := h.wasteLogService.AddWasteLog(c.Request.Context(), userID, req.Type)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"log": log, "fined": fined})
}

// GetWasteLogs handles GET /wastelogs
func (h *WasteLogHandler) GetWasteLogs(c *gin.Context) {
	userID, ok := currentSubjectID(c)
	if !ok {
		return
	}

	logs, err := h.wasteLogService.GetUserWasteLogs(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get waste logs: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}

// GetPickupHistory handles GET /pickups
func (h *WasteLogHandler) GetPickupHistory(c *gin.Context) {
	userID, ok := currentSubjectID(c)
	if !ok {
		return
	}

	pickups, err := h.wasteLogService.GetUserPickupHistory(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get pickup history: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, pickups)
}
