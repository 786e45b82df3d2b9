package repositories

import (
	"context"

	"github.com/greencityconnect/waste-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	FindAll(ctx context.Context) ([]*models.User, error)
	Count(ctx context.Context) (int64, error)
	// IncrementBalance atomically adds delta to the user's outstanding balance
	IncrementBalance(ctx context.Context, id primitive.ObjectID, delta float64) error
	// SetBalance overwrites the user's outstanding balance
	SetBalance(ctx context.Context, id primitive.ObjectID, balance float64) error
}

// AdminRepository defines the interface for admin account operations
type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error)
	FindByMobile(ctx context.Context, mobile string) (*models.Admin, error)
	Count(ctx context.Context) (int64, error)
}

// WasteLogRepository defines the interface for waste log operations
type WasteLogRepository interface {
	Create(ctx context.Context, log *models.WasteLog) error
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.WasteLog, error)
	// FindRecentByUserID returns the user's most recent logs, newest first
	FindRecentByUserID(ctx context.Context, userID primitive.ObjectID, limit int64) ([]*models.WasteLog, error)
}

// PickupRepository defines the interface for pickup history operations
type PickupRepository interface {
	Create(ctx context.Context, pickup *models.Pickup) error
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Pickup, error)
}

// BookingRepository defines the interface for booking data operations
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Booking, error)
	FindAll(ctx context.Context) ([]*models.Booking, error)
	Update(ctx context.Context, booking *models.Booking) error
	Count(ctx context.Context) (int64, error)
}

// PaymentRepository defines the interface for payment data operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Payment, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Payment, error)
	FindAll(ctx context.Context) ([]*models.Payment, error)
	Update(ctx context.Context, payment *models.Payment) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.PaymentStatus) (int64, error)
}

// PlanRepository defines the interface for subscription plan catalog operations
type PlanRepository interface {
	Create(ctx context.Context, plan *models.SubscriptionPlan) error
	FindByID(ctx context.Context, id string) (*models.SubscriptionPlan, error)
	FindAll(ctx context.Context) ([]*models.SubscriptionPlan, error)
	Update(ctx context.Context, plan *models.SubscriptionPlan) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// ComplaintRepository defines the interface for complaint data operations
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Complaint, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Complaint, error)
	FindAll(ctx context.Context) ([]*models.Complaint, error)
	Update(ctx context.Context, complaint *models.Complaint) error
	Count(ctx context.Context) (int64, error)
}

// AnnouncementRepository defines the interface for broadcast announcements
type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *models.Announcement) error
	FindAll(ctx context.Context) ([]*models.Announcement, error)
}

// AdminMessageRepository defines the interface for admin-to-user messages
type AdminMessageRepository interface {
	Create(ctx context.Context, message *models.AdminMessage) error
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.AdminMessage, error)
	CountUnreadByUserID(ctx context.Context, userID primitive.ObjectID) (int64, error)
	MarkReadByUserID(ctx context.Context, userID primitive.ObjectID) error
}
