package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/greencityconnect/waste-backend/internal/models"
	"github.com/greencityconnect/waste-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ComplaintUpdate holds the admin-editable complaint fields
type ComplaintUpdate struct {
	Status      *models.ComplaintStatus
	Description *string
}

// ComplaintService handles user-filed service complaints
type ComplaintService struct {
	complaintRepo repositories.ComplaintRepository
}

// NewComplaintService creates a new ComplaintService
func NewComplaintService(complaintRepo repositories.ComplaintRepository) *ComplaintService {
	return &ComplaintService{
		complaintRepo: complaintRepo,
	}
}

// FileComplaint records a new complaint for the user
func (s *ComplaintService) FileComplaint(ctx context.Context, userID primitive.ObjectID, issueType models.ComplaintIssueType, description, photo string) (*models.Complaint, error) {
	switch issueType {
	case models.IssueTypeMissedPickup, models.IssueTypeServiceIssue, models.IssueTypeOther:
	default:
		return nil, ErrInvalidStatus
	}

	complaint := &models.Complaint{
		UserID:      userID,
		IssueType:   issueType,
		Description: description,
		Photo:       photo,
		Status:      models.ComplaintStatusSubmitted,
		Date:        time.Now(),
	}
	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, err
	}

	slog.Info("complaint filed", "userId", userID.Hex(), "issueType", issueType)
	return complaint, nil
}

// GetUserComplaints retrieves a user's complaints, newest first
func (s *ComplaintService) GetUserComplaints(ctx context.Context, userID primitive.ObjectID) ([]*models.Complaint, error) {
	return s.complaintRepo.FindByUserID(ctx, userID)
}

// GetAllComplaints retrieves all complaints (admin operation)
func (s *ComplaintService) GetAllComplaints(ctx context.Context) ([]*models.Complaint, error) {
	return s.complaintRepo.FindAll(ctx)
}

// UpdateComplaint applies admin edits to a complaint. Only administrators
// move a complaint through its lifecycle.
func (s *ComplaintService) UpdateComplaint(ctx context.Context, id primitive.ObjectID, update *ComplaintUpdate) (*models.Complaint, error) {
	complaint, err := s.complaintRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrComplaintNotFound
		}
		return nil, err
	}

	if update.Status != nil {
		switch *update.Status {
		case models.ComplaintStatusSubmitted, models.ComplaintStatusInProgress, models.ComplaintStatusResolved:
		default:
			return nil, ErrInvalidStatus
		}
		complaint.Status = *update.Status
	}
	if update.Description != nil {
		complaint.Description = *update.Description
	}

	if err := s.complaintRepo.Update(ctx, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}
