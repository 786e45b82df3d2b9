package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentStatus represents the verification state of a payment.
// Payments only ever transition out of the pending state; verified, rejected
// and failed are terminal.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusVerified PaymentStatus = "verified"
	PaymentStatusRejected PaymentStatus = "rejected"
	PaymentStatusFailed   PaymentStatus = "failed"
)

// Payment represents a UPI payment attested by the user and settled by an
// administrator. BookingID is set when the payment is scoped to a single
// booking; PendingPlanID is set when the payment is a subscription upgrade
// charge whose plan swap commits on verification.
type Payment struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	UserID         primitive.ObjectID  `bson:"userId" json:"userId"`
	TransactionRef string              `bson:"transactionRef" json:"transactionRef"`
	Amount         float64             `bson:"amount" json:"amount"`
	Status         PaymentStatus       `bson:"status" json:"status"`
	ScreenshotURL  string              `bson:"screenshotUrl,omitempty" json:"screenshotUrl,omitempty"`
	BookingID      *primitive.ObjectID `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	PendingPlanID  string              `bson:"pendingPlanId,omitempty" json:"pendingPlanId,omitempty"`
	Date           time.Time           `bson:"date" json:"date"`
	CreatedAt      time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time           `bson:"updatedAt" json:"updatedAt"`
}
