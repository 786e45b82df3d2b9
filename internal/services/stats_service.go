package services

import (
	"context"

	"github.com/greencityconnect/waste-backend/internal/models"
	"github.com/greencityconnect/waste-backend/internal/repositories"
)

// DashboardStats summarizes the system for the admin dashboard
type DashboardStats struct {
	TotalUsers      int64 `json:"totalUsers"`
	TotalBookings   int64 `json:"totalBookings"`
	TotalPayments   int64 `json:"totalPayments"`
	PendingPayments int64 `json:"pendingPayments"`
	TotalComplaints int64 `json:"totalComplaints"`
	TotalPlans      int64 `json:"totalPlans"`
}

// StatsService aggregates collection counts for the admin dashboard
type StatsService struct {
	userRepo      repositories.UserRepository
	bookingRepo   repositories.BookingRepository
	paymentRepo   repositories.PaymentRepository
	complaintRepo repositories.ComplaintRepository
	planRepo      repositories.PlanRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(userRepo repositories.UserRepository, bookingRepo repositories.BookingRepository, paymentRepo repositories.PaymentRepository, complaintRepo repositories.ComplaintRepository, planRepo repositories.PlanRepository) *StatsService {
	return &StatsService{
		userRepo:      userRepo,
		bookingRepo:   bookingRepo,
		paymentRepo:   paymentRepo,
		complaintRepo: complaintRepo,
		planRepo:      planRepo,
	}
}

// GetDashboardStats collects the totals shown on the admin dashboard
func (s *StatsService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error

	if stats.TotalUsers, err = s.userRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalBookings, err = s.bookingRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalPayments, err = s.paymentRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.PendingPayments, err = s.paymentRepo.CountByStatus(ctx, models.PaymentStatusPending); err != nil {
		return nil, err
	}
	if stats.TotalComplaints, err = s.complaintRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalPlans, err = s.planRepo.Count(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}
