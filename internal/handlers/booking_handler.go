package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/greencityconnect/waste-backend/internal/models"
	"github.com/greencityconnect/waste-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingHandler handles booking HTTP requests
type BookingHandler struct {
	bookingService *services.BookingService
	paymentService *services.PaymentService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookingService *services.BookingService, paymentService *services.PaymentService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		paymentService: paymentService,
	}
}

// CreateBooking handles POST /bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := currentSubjectID(c)
	if !ok {
		return
	}

	var req struct {
		Date            string `json:"date" binding:"required"`
		Time            string `json:"time" binding:"required"`
		Notes           string `json:"notes"`
		ReminderEnabled bool   `json:"reminderEnabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), userID, &services.BookingRequest{
		Date:            date,
		Time:            req.Time,
		Notes:           req.Notes,
		ReminderEnabled: req.ReminderEnabled,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetBookings handles GET /bookings
func (h *BookingHandler) GetBookings(c *gin.Context) {
	userID, ok := currentSubjectID(c)
	if !ok {
		return
	}

	bookings, err := h.bookingService.GetUserBookings(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get bookings: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// PayForBooking handles POST /bookings/:id/pay
func (h *BookingHandler) PayForBooking(c *gin.Context) {
	userID, ok := currentSubjectID(c)
	if !ok {
		return
	}

	bookingID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	payment, err := h.paymentService.InitiateBookingPayment(c.Request.Context(), userID, bookingID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// GetAllBookings handles GET /admin/bookings
func (h *BookingHandler) GetAllBookings(c *gin.Context) {
	bookings, err := h.bookingService.GetAllBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get bookings: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// UpdateBooking handles PUT /admin/bookings/:id
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var req struct {
		Date            *string               `json:"date"`
		Time            *string               `json:"time"`
		Notes           *string               `json:"notes"`
		ReminderEnabled *bool                 `json:"reminderEnabled"`
		Status          *models.BookingStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := &services.BookingUpdate{
		Time:            req.Time,
		Notes:           req.Notes,
		ReminderEnabled: req.ReminderEnabled,
		Status:          req.Status,
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
			return
		}
		update.Date = &date
	}

	booking, err := h.bookingService.UpdateBooking(c.Request.Context(), id, update)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}
