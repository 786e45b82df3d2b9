package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/greencityconnect/waste-backend/internal/config"
	"github.com/greencityconnect/waste-backend/internal/models"
	"github.com/greencityconnect/waste-backend/internal/repositories"
	"github.com/greencityconnect/waste-backend/internal/utils"
	"github.com/greencityconnect/waste-backend/pkg/qrgateway"
	"github.com/greencityconnect/waste-backend/pkg/upi"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentService handles the payment workflow: initiation, screenshot upload
// and admin settlement. Balance and plan side effects happen exactly once, at
// the moment a payment reaches the verified state.
type PaymentService struct {
	paymentRepo repositories.PaymentRepository
	userRepo    repositories.UserRepository
	bookingRepo repositories.BookingRepository
	planRepo    repositories.PlanRepository
	qrGateway   qrgateway.Gateway
	cfg         *config.Config
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(paymentRepo repositories.PaymentRepository, userRepo repositories.UserRepository, bookingRepo repositories.BookingRepository, planRepo repositories.PlanRepository, qrGateway qrgateway.Gateway, cfg *config.Config) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		planRepo:    planRepo,
		qrGateway:   qrGateway,
		cfg:         cfg,
	}
}

// Initiate creates a pending payment against the user's outstanding balance.
// The balance itself is untouched until verification.
func (s *PaymentService) Initiate(ctx context.Context, userID primitive.ObjectID, amount float64) (*models.Payment, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	payment := &models.Payment{
		UserID:         userID,
		TransactionRef: utils.NewTransactionRef(),
		Amount:         amount,
		Status:         models.PaymentStatusPending,
		Date:           time.Now(),
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	slog.Info("payment initiated", "userId", userID.Hex(), "ref", payment.TransactionRef, "amount", amount)
	return payment, nil
}

// InitiateBookingPayment creates a pending payment scoped to a single
// booking's amount. The booking's payment status is resolved when an
// administrator settles the payment.
func (s *PaymentService) InitiateBookingPayment(ctx context.Context, userID, bookingID primitive.ObjectID) (*models.Payment, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if booking.UserID != userID {
		return nil, ErrNotOwner
	}
	if booking.PaymentStatus == models.BookingPaymentPaid {
		return nil, ErrBookingPaid
	}
	if booking.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	payment := &models.Payment{
		UserID:         userID,
		TransactionRef: utils.NewTransactionRef(),
		Amount:         booking.Amount,
		Status:         models.PaymentStatusPending,
		BookingID:      &booking.ID,
		Date:           time.Now(),
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	slog.Info("booking payment initiated", "userId", userID.Hex(), "bookingId", bookingID.Hex(), "ref", payment.TransactionRef)
	return payment, nil
}

// InitiateUpgradeCharge creates a pending payment for a prorated subscription
// upgrade. The target plan id rides on the payment so the swap can commit at
// verification time.
func (s *PaymentService) InitiateUpgradeCharge(ctx context.Context, userID primitive.ObjectID, amount float64, targetPlanID string) (*models.Payment, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	payment := &models.Payment{
		UserID:         userID,
		TransactionRef: utils.NewTransactionRef(),
		Amount:         amount,
		Status:         models.PaymentStatusPending,
		PendingPlanID:  targetPlanID,
		Date:           time.Now(),
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	slog.Info("upgrade charge initiated", "userId", userID.Hex(), "targetPlan", targetPlanID, "amount", amount)
	return payment, nil
}

// UploadScreenshot attaches payment evidence. Only the payer may attach, and
// only while the payment is pending.
func (s *PaymentService) UploadScreenshot(ctx context.Context, userID, paymentID primitive.ObjectID, screenshotURL string) (*models.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if payment.UserID != userID {
		return nil, ErrNotOwner
	}
	if payment.Status != models.PaymentStatusPending {
		return nil, ErrPaymentNotPending
	}

	payment.ScreenshotURL = screenshotURL
	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// GetUserPayments retrieves a user's payments, newest first
func (s *PaymentService) GetUserPayments(ctx context.Context, userID primitive.ObjectID) ([]*models.Payment, error) {
	return s.paymentRepo.FindByUserID(ctx, userID)
}

// GetAllPayments retrieves all payments, newest first (admin operation)
func (s *PaymentService) GetAllPayments(ctx context.Context) ([]*models.Payment, error) {
	return s.paymentRepo.FindAll(ctx)
}

// UpdateStatus settles a pending payment (admin operation). Verification
// decrements the payer's balance by the payment amount exactly once, clamped
// at zero, and resolves any booking or subscription swap riding on the
// payment. Rejection and failure leave balance and subscription untouched.
func (s *PaymentService) UpdateStatus(ctx context.Context, paymentID primitive.ObjectID, status models.PaymentStatus) (*models.Payment, error) {
	switch status {
	case models.PaymentStatusVerified, models.PaymentStatusRejected, models.PaymentStatusFailed:
	default:
		return nil, ErrInvalidStatus
	}

	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if payment.Status != models.PaymentStatusPending {
		return nil, ErrPaymentNotPending
	}

	payment.Status = status
	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	if status == models.PaymentStatusVerified {
		if err := s.applyVerification(ctx, payment); err != nil {
			return nil, err
		}
	} else if payment.BookingID != nil {
		if err := s.setBookingPaymentStatus(ctx, *payment.BookingID, models.BookingPaymentFailed); err != nil {
			return nil, err
		}
	}

	slog.Info("payment settled", "ref", payment.TransactionRef, "status", status)
	return payment, nil
}

// applyVerification performs the side effects of a verified payment
func (s *PaymentService) applyVerification(ctx context.Context, payment *models.Payment) error {
	user, err := s.userRepo.FindByID(ctx, payment.UserID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}
		return err
	}

	balance := user.OutstandingBalance - payment.Amount
	if balance < 0 {
		balance = 0
	}
	if err := s.userRepo.SetBalance(ctx, user.ID, balance); err != nil {
		return err
	}

	if payment.BookingID != nil {
		if err := s.setBookingPaymentStatus(ctx, *payment.BookingID, models.BookingPaymentPaid); err != nil {
			return err
		}
	}

	if payment.PendingPlanID != "" {
		if err := s.commitPlanSwap(ctx, user, payment.PendingPlanID); err != nil {
			return err
		}
	}
	return nil
}

// commitPlanSwap moves the user onto the plan their upgrade charge paid for
func (s *PaymentService) commitPlanSwap(ctx context.Context, user *models.User, planID string) error {
	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrPlanNotFound
		}
		return err
	}

	user.Subscription.PlanID = plan.ID
	user.Subscription.NextRenewalDate = utils.FirstOfNextMonth(time.Now())
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}
	slog.Info("subscription upgraded", "userId", user.ID.Hex(), "planId", plan.ID)
	return nil
}

func (s *PaymentService) setBookingPaymentStatus(ctx context.Context, bookingID primitive.ObjectID, status models.BookingPaymentStatus) error {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrBookingNotFound
		}
		return err
	}
	booking.PaymentStatus = status
	return s.bookingRepo.Update(ctx, booking)
}

// UPIIntent describes a payment request the client can render as a deep link
// or QR code
type UPIIntent struct {
	URI        string  `json:"uri"`
	QRImageURL string  `json:"qrImageUrl"`
	Amount     float64 `json:"amount"`
}

// BuildUPIIntent builds the UPI deep link and QR image URL for an amount
func (s *PaymentService) BuildUPIIntent(amount float64) (*UPIIntent, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	uri := upi.BuildIntentURI(upi.Intent{
		PayeeID:   s.cfg.UPI.PayeeID,
		PayeeName: s.cfg.UPI.PayeeName,
		Amount:    amount,
		Currency:  s.cfg.UPI.Currency,
		Note:      s.cfg.UPI.Note,
	})
	qrURL, err := s.qrGateway.ImageURL(uri)
	if err != nil {
		return nil, err
	}

	return &UPIIntent{URI: uri, QRImageURL: qrURL, Amount: amount}, nil
}
