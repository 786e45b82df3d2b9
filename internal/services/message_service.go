package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/greencityconnect/waste-backend/internal/models"
	"github.com/greencityconnect/waste-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MessageService handles admin-to-user direct messages and broadcast
// announcements
type MessageService struct {
	messageRepo      repositories.AdminMessageRepository
	announcementRepo repositories.AnnouncementRepository
	userRepo         repositories.UserRepository
}

// NewMessageService creates a new MessageService
func NewMessageService(messageRepo repositories.AdminMessageRepository, announcementRepo repositories.AnnouncementRepository, userRepo repositories.UserRepository) *MessageService {
	return &MessageService{
		messageRepo:      messageRepo,
		announcementRepo: announcementRepo,
		userRepo:         userRepo,
	}
}

// SendAdminMessage appends a timestamped unread message to a user's inbox
func (s *MessageService) SendAdminMessage(ctx context.Context, userID primitive.ObjectID, text string) (*models.AdminMessage, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	message := &models.AdminMessage{
		UserID:    userID,
		Text:      text,
		Read:      false,
		Timestamp: time.Now(),
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	slog.Info("admin message sent", "userId", userID.Hex())
	return message, nil
}

// CreateAnnouncement publishes a broadcast announcement
func (s *MessageService) CreateAnnouncement(ctx context.Context, title, content string) (*models.Announcement, error) {
	announcement := &models.Announcement{
		Title:     title,
		Content:   content,
		Timestamp: time.Now(),
	}
	if err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

// GetInbox returns the user's direct messages merged with all announcements,
// ordered by recency
func (s *MessageService) GetInbox(ctx context.Context, userID primitive.ObjectID) ([]*models.InboxItem, error) {
	messages, err := s.messageRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	announcements, err := s.announcementRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*models.InboxItem, 0, len(messages)+len(announcements))
	for _, m := range messages {
		items = append(items, &models.InboxItem{Kind: "message", Message: m, Timestamp: m.Timestamp})
	}
	for _, a := range announcements {
		items = append(items, &models.InboxItem{Kind: "announcement", Announcement: a, Timestamp: a.Timestamp})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	return items, nil
}

// GetUnreadCount returns the number of unread direct messages for a user
func (s *MessageService) GetUnreadCount(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return s.messageRepo.CountUnreadByUserID(ctx, userID)
}

// MarkMessagesAsRead flips all of the user's direct messages to read
func (s *MessageService) MarkMessagesAsRead(ctx context.Context, userID primitive.ObjectID) error {
	return s.messageRepo.MarkReadByUserID(ctx, userID)
}

// GetAnnouncements retrieves all announcements, newest first
func (s *MessageService) GetAnnouncements(ctx context.Context) ([]*models.Announcement, error) {
	return s.announcementRepo.FindAll(ctx)
}
