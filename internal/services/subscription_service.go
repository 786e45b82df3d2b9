package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/greencityconnect/waste-backend/internal/models"
	"github.com/greencityconnect/waste-backend/internal/repositories"
	"github.com/greencityconnect/waste-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// SubscriptionChange is the outcome of a plan change request. For upgrades,
// Payment carries the pending prorated charge and the swap has NOT happened
// yet; for downgrades and lateral moves, Payment is nil and the swap is
// already committed.
type SubscriptionChange struct {
	User    *models.User    `json:"user"`
	Payment *models.Payment `json:"payment,omitempty"`
}

// SubscriptionService manages the plan catalog and plan changes
type SubscriptionService struct {
	planRepo       repositories.PlanRepository
	userRepo       repositories.UserRepository
	paymentService *PaymentService
}

// NewSubscriptionService creates a new SubscriptionService
func NewSubscriptionService(planRepo repositories.PlanRepository, userRepo repositories.UserRepository, paymentService *PaymentService) *SubscriptionService {
	return &SubscriptionService{
		planRepo:       planRepo,
		userRepo:       userRepo,
		paymentService: paymentService,
	}
}

// GetPlans retrieves the plan catalog
func (s *SubscriptionService) GetPlans(ctx context.Context) ([]*models.SubscriptionPlan, error) {
	return s.planRepo.FindAll(ctx)
}

// UpdateSubscription changes the user's plan. If the target plan is more
// expensive, a pending payment for the price difference is created and the
// stored plan id stays untouched until that payment is verified. Otherwise
// the swap commits immediately with no charge.
func (s *SubscriptionService) UpdateSubscription(ctx context.Context, userID primitive.ObjectID, newPlanID string) (*SubscriptionChange, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	currentPlan, err := s.findPlan(ctx, user.Subscription.PlanID)
	if err != nil {
		return nil, err
	}
	newPlan, err := s.findPlan(ctx, newPlanID)
	if err != nil {
		return nil, err
	}

	priceDifference := newPlan.PricePerMonth - currentPlan.PricePerMonth
	if priceDifference > 0 {
		payment, err := s.paymentService.InitiateUpgradeCharge(ctx, userID, priceDifference, newPlan.ID)
		if err != nil {
			return nil, err
		}
		return &SubscriptionChange{User: user, Payment: payment}, nil
	}

	user.Subscription.PlanID = newPlan.ID
	user.Subscription.NextRenewalDate = utils.FirstOfNextMonth(time.Now())
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	slog.Info("subscription changed", "userId", userID.Hex(), "planId", newPlan.ID)
	return &SubscriptionChange{User: user}, nil
}

// CreatePlan adds a plan to the catalog (admin operation)
func (s *SubscriptionService) CreatePlan(ctx context.Context, plan *models.SubscriptionPlan) error {
	if plan.ID == "" {
		plan.ID = "plan_" + strings.Split(uuid.NewString(), "-")[0]
	}
	return s.planRepo.Create(ctx, plan)
}

// UpdatePlan edits a catalog plan (admin operation)
func (s *SubscriptionService) UpdatePlan(ctx context.Context, plan *models.SubscriptionPlan) error {
	if err := s.planRepo.Update(ctx, plan); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrPlanNotFound
		}
		return err
	}
	return nil
}

// DeletePlan removes a catalog plan (admin operation)
func (s *SubscriptionService) DeletePlan(ctx context.Context, id string) error {
	if err := s.planRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrPlanNotFound
		}
		return err
	}
	return nil
}

func (s *SubscriptionService) findPlan(ctx context.Context, id string) (*models.SubscriptionPlan, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}
