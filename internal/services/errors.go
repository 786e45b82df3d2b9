package services

import "errors"

// Typed errors surfaced by the service layer. Handlers map these to HTTP
// status codes.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrAdminNotFound     = errors.New("admin not found")
	ErrAccountBlocked    = errors.New("account is blocked")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrEmailTaken        = errors.New("a user with this email already exists")
	ErrInvalidWasteType  = errors.New("invalid waste type")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrPaymentNotPending = errors.New("payment is not pending")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingPaid       = errors.New("booking is already paid")
	ErrComplaintNotFound = errors.New("complaint not found")
	ErrPlanNotFound      = errors.New("subscription plan not found")
	ErrNotOwner          = errors.New("resource does not belong to this user")
)
