package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingStatus represents the scheduling state of a booking
type BookingStatus string

const (
	BookingStatusScheduled BookingStatus = "scheduled"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// BookingPaymentStatus represents the payment state of a booking.
// It is tracked independently of the scheduling status.
type BookingPaymentStatus string

const (
	BookingPaymentUnpaid BookingPaymentStatus = "unpaid"
	BookingPaymentPaid   BookingPaymentStatus = "paid"
	BookingPaymentFailed BookingPaymentStatus = "failed"
)

// Booking represents a special-collection booking request
type Booking struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	UserID          primitive.ObjectID   `bson:"userId" json:"userId"`
	Date            time.Time            `bson:"date" json:"date"`
	Time            string               `bson:"time" json:"time"`
	Notes           string               `bson:"notes" json:"notes"`
	ReminderEnabled bool                 `bson:"reminderEnabled" json:"reminderEnabled"`
	Status          BookingStatus        `bson:"status" json:"status"`
	Amount          float64              `bson:"amount" json:"amount"`
	PaymentStatus   BookingPaymentStatus `bson:"paymentStatus" json:"paymentStatus"`
	CreatedAt       time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time            `bson:"updatedAt" json:"updatedAt"`
}
