package services

import (
	"context"
	"testing"
	"time"

	"github.com/greencityconnect/waste-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newMessageFixture(t *testing.T) (*MessageService, *fakeAdminMessageRepo, *fakeAnnouncementRepo, primitive.ObjectID) {
	t.Helper()
	userRepo := newFakeUserRepo()
	user := &models.User{Name: "Asha", Email: "asha@example.com"}
	require.NoError(t, userRepo.Create(context.Background(), user))

	messageRepo := newFakeAdminMessageRepo()
	announcementRepo := newFakeAnnouncementRepo()
	return NewMessageService(messageRepo, announcementRepo, userRepo), messageRepo, announcementRepo, user.ID
}

func TestSendAdminMessage(t *testing.T) {
	svc, _, _, userID := newMessageFixture(t)
	ctx := context.Background()

	message, err := svc.SendAdminMessage(ctx, userID, "Your payment was verified")
	require.NoError(t, err)
	assert.False(t, message.Read)
	assert.Equal(t, userID, message.UserID)

	_, err = svc.SendAdminMessage(ctx, primitive.NewObjectID(), "hello")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUnreadCountAndMarkRead(t *testing.T) {
	svc, _, _, userID := newMessageFixture(t)
	ctx := context.Background()

	_, err := svc.SendAdminMessage(ctx, userID, "First notice")
	require.NoError(t, err)
	_, err = svc.SendAdminMessage(ctx, userID, "Second notice")
	require.NoError(t, err)

	count, err := svc.GetUnreadCount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, svc.MarkMessagesAsRead(ctx, userID))

	count, err = svc.GetUnreadCount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestGetInboxMergesAndOrders(t *testing.T) {
	svc, messageRepo, announcementRepo, userID := newMessageFixture(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, messageRepo.Create(ctx, &models.AdminMessage{UserID: userID, Text: "Oldest", Timestamp: base}))
	require.NoError(t, announcementRepo.Create(ctx, &models.Announcement{Title: "Holiday schedule", Content: "No pickup on Friday", Timestamp: base.Add(time.Hour)}))
	require.NoError(t, messageRepo.Create(ctx, &models.AdminMessage{UserID: userID, Text: "Newest", Timestamp: base.Add(2 * time.Hour)}))

	// Messages addressed to other households stay out of this inbox
	require.NoError(t, messageRepo.Create(ctx, &models.AdminMessage{UserID: primitive.NewObjectID(), Text: "Not yours", Timestamp: base.Add(3 * time.Hour)}))

	items, err := svc.GetInbox(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "message", items[0].Kind)
	assert.Equal(t, "Newest", items[0].Message.Text)
	assert.Equal(t, "announcement", items[1].Kind)
	assert.Equal(t, "Holiday schedule", items[1].Announcement.Title)
	assert.Equal(t, "message", items[2].Kind)
	assert.Equal(t, "Oldest", items[2].Message.Text)
}

func TestCreateAnnouncement(t *testing.T) {
	svc, _, _, _ := newMessageFixture(t)
	ctx := context.Background()

	announcement, err := svc.CreateAnnouncement(ctx, "New recycling rules", "Glass goes in the green bin from September")
	require.NoError(t, err)
	assert.False(t, announcement.Timestamp.IsZero())

	all, err := svc.GetAnnouncements(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
