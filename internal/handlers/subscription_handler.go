package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/greencityconnect/waste-backend/internal/models"
	"github.com/greencityconnect/waste-backend/internal/services"
)

// SubscriptionHandler handles subscription plan HTTP requests
type SubscriptionHandler struct {
	subscriptionService *services.SubscriptionService
}

// NewSubscriptionHandler creates a new SubscriptionHandler
func NewSubscriptionHandler(subscriptionService *services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
	}
}

// GetPlans handles GET /plans
func (h *SubscriptionHandler) GetPlans(c *gin.Context) {
	plans, err := h.subscriptionService.GetPlans(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get plans: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, plans)
}

// UpdateSubscription handles POST /subscription
func (h *SubscriptionHandler) UpdateSubscription(c *gin.Context) {
	userID, ok := currentSubjectID(c)
	if !ok {
		return
	}

	var req struct {
		PlanID string `json:"planId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	change, err := h.subscriptionService.UpdateSubscription(c.Request.Context(), userID, req.PlanID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, change)
}

// CreatePlan handles POST /admin/plans
func (h *SubscriptionHandler) CreatePlan(c *gin.Context) {
	var plan models.SubscriptionPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.subscriptionService.CreatePlan(c.Request.Context(), &plan); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// UpdatePlan handles PUT /admin/plans/:id
func (h *SubscriptionHandler) UpdatePlan(c *gin.Context) {
	var plan models.SubscriptionPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plan.ID = c.Param("id")

	if err := h.subscriptionService.UpdatePlan(c.Request.Context(), &plan); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DeletePlan handles DELETE /admin/plans/:id
func (h *SubscriptionHandler) DeletePlan(c *gin.Context) {
	if err := h.subscriptionService.DeletePlan(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Plan deleted successfully"})
}
