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
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles authentication for users and administrators
type AuthService struct {
	userRepo  repositories.UserRepository
	adminRepo repositories.AdminRepository
	planRepo  repositories.PlanRepository
	cfg       *config.Config
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.UserRepository, adminRepo repositories.AdminRepository, planRepo repositories.PlanRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		adminRepo: adminRepo,
		planRepo:  planRepo,
		cfg:       cfg,
	}
}

// Signup registers a new household account. The email must be unique, the
// household id is derived from name and address, and the account starts on
// the default plan with the plan's monthly price outstanding.
func (s *AuthService) Signup(ctx context.Context, req *models.SignupRequest) (*models.User, string, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	plan, err := s.planRepo.FindByID(ctx, s.cfg.Billing.DefaultPlanID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", ErrPlanNotFound
		}
		return nil, "", err
	}

	user := &models.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    string(hashed),
		Address:     req.Address,
		HouseholdID: utils.GenerateHouseholdID(req.Name, req.Address),
		Subscription: models.UserSubscription{
			PlanID:          plan.ID,
			Status:          "active",
			NextRenewalDate: utils.FirstOfNextMonth(time.Now()),
		},
		Status:             models.UserStatusActive,
		OutstandingBalance: plan.PricePerMonth,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), "user", s.cfg)
	if err != nil {
		return nil, "", err
	}

	slog.Info("user signed up", "userId", user.ID.Hex(), "householdId", user.HouseholdID)
	return user, token, nil
}

// Login authenticates a user by email and password
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}
	if user.Status == models.UserStatusBlocked {
		return nil, "", ErrAccountBlocked
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrIncorrectPassword
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), "user", s.cfg)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// AdminLogin authenticates an administrator by mobile number and password
func (s *AuthService) AdminLogin(ctx context.Context, mobile, password string) (*models.Admin, string, error) {
	admin, err := s.adminRepo.FindByMobile(ctx, mobile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", ErrAdminNotFound
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, "", ErrIncorrectPassword
	}

	token, err := utils.GenerateJWT(admin.ID.Hex(), "admin", s.cfg)
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}

// ResetPassword replaces a user's password. The email must match an existing
// account.
func (s *AuthService) ResetPassword(ctx context.Context, email, newPassword string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)

	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}
	slog.Info("password reset", "userId", user.ID.Hex())
	return nil
}
