package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/greencityconnect/waste-backend/internal/models"
	"github.com/greencityconnect/waste-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentHandler handles payment workflow HTTP requests
type PaymentHandler struct {
	paymentService *services.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// InitiatePayment handles POST /payments
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	userID, ok := currentSubjectID(c)
	if !ok {
		return
	}

	var req struct {
		Amount float64 `json:"amount" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.paymentService.Initiate(c.Request.Context(), userID, req.Amount)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// UploadScreenshot handles POST /payments/:id/screenshot
func (h *PaymentHandler) UploadScreenshot(c *gin.Context) {
	userID, ok := currentSubjectID(c)
	if !ok {
		return
	}

	paymentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var req struct {
		ScreenshotURL string `json:"screenshotUrl" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.paymentService.UploadScreenshot(c.Request.Context(), userID, paymentID, req.ScreenshotURL)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

// GetPayments handles GET /payments
func (h *PaymentHandler) GetPayments(c *gin.Context) {
	userID, ok := currentSubjectID(c)
	if !ok {
		return
	}

	payments, err := h.paymentService.GetUserPayments(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get payments: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// GetUPIIntent handles GET /payments/upi-intent?amount=
func (h *PaymentHandler) GetUPIIntent(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
		return
	}

	intent, err := h.paymentService.BuildUPIIntent(amount)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, intent)
}

// GetAllPayments handles GET /admin/payments
func (h *PaymentHandler) GetAllPayments(c *gin.Context) {
	payments, err := h.paymentService.GetAllPayments(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get payments: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// UpdatePaymentStatus handles PUT /admin/payments/:id/status
func (h *PaymentHandler) UpdatePaymentStatus(c *gin.Context) {
	paymentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var req struct {
		Status models.PaymentStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.paymentService.UpdateStatus(c.Request.Context(), paymentID, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}
