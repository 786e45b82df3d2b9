package services

import (
	"context"
	"testing"
	"time"

	"github.com/greencityconnect/waste-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newBookingFixture(t *testing.T) (*BookingService, *fakeBookingRepo) {
	t.Helper()
	bookingRepo := newFakeBookingRepo()
	return NewBookingService(bookingRepo, testConfig()), bookingRepo
}

func TestCreateBookingDefaults(t *testing.T) {
	svc, _ := newBookingFixture(t)
	userID := primitive.NewObjectID()

	booking, err := svc.CreateBooking(context.Background(), userID, &BookingRequest{
		Date:            time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Time:            "09:00",
		Notes:           "Old furniture",
		ReminderEnabled: true,
	})
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusScheduled, booking.Status)
	assert.Equal(t, models.BookingPaymentUnpaid, booking.PaymentStatus)
	assert.Equal(t, 150.0, booking.Amount)
	assert.Equal(t, userID, booking.UserID)
}

func TestUpdateBookingStatus(t *testing.T) {
	svc, bookingRepo := newBookingFixture(t)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	booking, err := svc.CreateBooking(ctx, userID, &BookingRequest{Date: time.Now(), Time: "09:00"})
	require.NoError(t, err)

	status := models.BookingStatusCompleted
	updated, err := svc.UpdateBooking(ctx, booking.ID, &BookingUpdate{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, updated.Status)

	// Scheduling changes never touch the payment state
	assert.Equal(t, models.BookingPaymentUnpaid, updated.PaymentStatus)

	stored, err := bookingRepo.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, stored.Status)

	bad := models.BookingStatus("archived")
	_, err = svc.UpdateBooking(ctx, booking.ID, &BookingUpdate{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateBooking(ctx, primitive.NewObjectID(), &BookingUpdate{Status: &status})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateBookingPartialFields(t *testing.T) {
	svc, _ := newBookingFixture(t)
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, primitive.NewObjectID(), &BookingRequest{
		Date:  time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Time:  "09:00",
		Notes: "Old furniture",
	})
	require.NoError(t, err)

	newTime := "14:00"
	updated, err := svc.UpdateBooking(ctx, booking.ID, &BookingUpdate{Time: &newTime})
	require.NoError(t, err)
	assert.Equal(t, "14:00", updated.Time)
	assert.Equal(t, "Old furniture", updated.Notes)
	assert.Equal(t, booking.Date, updated.Date)
}
