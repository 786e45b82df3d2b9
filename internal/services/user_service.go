package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/greencityconnect/waste-backend/internal/models"
	"github.com/greencityconnect/waste-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProfileUpdate holds the user-editable profile fields. Role, status and
// balance are never mutated through profile updates.
type ProfileUpdate struct {
	Name           string `json:"name"`
	Address        string `json:"address"`
	ProfilePicture string `json:"profilePicture"`
}

// UserService handles user-related business logic
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetAllUsers retrieves all users
func (s *UserService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.FindAll(ctx)
}

// UpdateProfile applies user-editable profile fields
func (s *UserService) UpdateProfile(ctx context.Context, id primitive.ObjectID, update *ProfileUpdate) (*models.User, error) {
	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != "" {
		user.Name = update.Name
	}
	if update.Address != "" {
		user.Address = update.Address
	}
	if update.ProfilePicture != "" {
		user.ProfilePicture = update.ProfilePicture
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUserStatus sets a user's account standing (admin operation)
func (s *UserService) UpdateUserStatus(ctx context.Context, id primitive.ObjectID, status models.UserStatus) (*models.User, error) {
	switch status {
	case models.UserStatusActive, models.UserStatusRestricted, models.UserStatusBlocked:
	default:
		return nil, ErrInvalidStatus
	}

	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Status = status
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	slog.Info("user status updated", "userId", id.Hex(), "status", status)
	return user, nil
}

// DeleteUser removes a user account (admin operation)
func (s *UserService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}
		return err
	}
	slog.Info("user deleted", "userId", id.Hex())
	return nil
}
