package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/greencityconnect/waste-backend/internal/config"
	"github.com/greencityconnect/waste-backend/internal/models"
	"github.com/greencityconnect/waste-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRequest holds the user-supplied fields of a new booking
type BookingRequest struct {
	Date            time.Time
	Time            string
	Notes           string
	ReminderEnabled bool
}

// BookingUpdate holds the admin-editable booking fields. Nil pointers leave
// the field unchanged.
type BookingUpdate struct {
	Date            *time.Time
	Time            *string
	Notes           *string
	ReminderEnabled *bool
	Status          *models.BookingStatus
}

// BookingService handles special-collection bookings
type BookingService struct {
	bookingRepo repositories.BookingRepository
	cfg         *config.Config
}

// NewBookingService creates a new BookingService
func NewBookingService(bookingRepo repositories.BookingRepository, cfg *config.Config) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		cfg:         cfg,
	}
}

// CreateBooking creates a booking for the user. New bookings are scheduled,
// unpaid, and carry the configured special-pickup fee.
func (s *BookingService) CreateBooking(ctx context.Context, userID primitive.ObjectID, req *BookingRequest) (*models.Booking, error) {
	booking := &models.Booking{
		UserID:          userID,
		Date:            req.Date,
		Time:            req.Time,
		Notes:           req.Notes,
		ReminderEnabled: req.ReminderEnabled,
		Status:          models.BookingStatusScheduled,
		Amount:          s.cfg.Billing.PickupFee,
		PaymentStatus:   models.BookingPaymentUnpaid,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	slog.Info("booking created", "userId", userID.Hex(), "bookingId", booking.ID.Hex())
	return booking, nil
}

// GetUserBookings retrieves a user's bookings, newest first
func (s *BookingService) GetUserBookings(ctx context.Context, userID primitive.ObjectID) ([]*models.Booking, error) {
	return s.bookingRepo.FindByUserID(ctx, userID)
}

// GetAllBookings retrieves all bookings (admin operation)
func (s *BookingService) GetAllBookings(ctx context.Context) ([]*models.Booking, error) {
	return s.bookingRepo.FindAll(ctx)
}

// UpdateBooking applies admin edits to a booking. The scheduling status and
// the payment status are independent: this never touches paymentStatus,
// which belongs to the payment workflow.
func (s *BookingService) UpdateBooking(ctx context.Context, id primitive.ObjectID, update *BookingUpdate) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if update.Status != nil {
		switch *update.Status {
		case models.BookingStatusScheduled, models.BookingStatusCompleted, models.BookingStatusCancelled:
		default:
			return nil, ErrInvalidStatus
		}
		booking.Status = *update.Status
	}
	if update.Date != nil {
		booking.Date = *update.Date
	}
	if update.Time != nil {
		booking.Time = *update.Time
	}
	if update.Notes != nil {
		booking.Notes = *update.Notes
	}
	if update.ReminderEnabled != nil {
		booking.ReminderEnabled = *update.ReminderEnabled
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}
