package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/greencityconnect/waste-backend/internal/models"
	"github.com/greencityconnect/waste-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ComplaintHandler handles complaint HTTP requests
type ComplaintHandler struct {
	complaintService *services.ComplaintService
}

// NewComplaintHandler creates a new ComplaintHandler
func NewComplaintHandler(complaintService *services.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{
		complaintService: complaintService,
	}
}

// FileComplaint handles POST /complaints
func (h *ComplaintHandler) FileComplaint(c *gin.Context) {
	userID, ok := currentSubjectID(c)
	if !ok {
		return
	}

	var req struct {
		IssueType   models.ComplaintIssueType `json:"issueType" binding:"required"`
		Description string                    `json:"description" binding:"required"`
		Photo       string                    `json:"photo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	complaint, err := h.complaintService.FileComplaint(c.Request.Context(), userID, req.IssueType, req.Description, req.Photo)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, complaint)
}

// GetComplaints handles GET /complaints
func (h *ComplaintHandler) GetComplaints(c *gin.Context) {
	userID, ok := currentSubjectID(c)
	if !ok {
		return
	}

	complaints, err := h.complaintService.GetUserComplaints(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get complaints: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, complaints)
}

// GetAllComplaints handles GET /admin/complaints
func (h *ComplaintHandler) GetAllComplaints(c *gin.Context) {
	complaints, err := h.complaintService.GetAllComplaints(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get complaints: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, complaints)
}

// UpdateComplaint handles PUT /admin/complaints/:id
func (h *ComplaintHandler) UpdateComplaint(c *gin.Context) {
	complaintID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var req struct {
		Status      *models.ComplaintStatus `json:"status"`
		Description *string                 `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	complaint, err := h.complaintService.UpdateComplaint(c.Request.Context(), complaintID, &services.ComplaintUpdate{
		Status:      req.Status,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, complaint)
}
