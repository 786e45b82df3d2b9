package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/greencityconnect/waste-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// currentSubjectID extracts the authenticated identity set by the JWT
// middleware
func currentSubjectID(c *gin.Context) (primitive.ObjectID, bool) {
	raw, exists := c.Get("subjectID")
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Identity not found in context"})
		return primitive.NilObjectID, false
	}
	hex, ok := raw.(string)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid identity in context"})
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid identity format"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// respondServiceError maps service-layer errors to HTTP status codes
func respondServiceError(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrAdminNotFound),
		errors.Is(err, services.ErrPaymentNotFound),
		errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrComplaintNotFound),
		errors.Is(err, services.ErrPlanNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrAccountBlocked),
		errors.Is(err, services.ErrIncorrectPassword):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrNotOwner):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrPaymentNotPending),
		errors.Is(err, services.ErrBookingPaid):
		status = http.StatusConflict
	case errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInvalidWasteType),
		errors.Is(err, services.ErrInvalidStatus):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
