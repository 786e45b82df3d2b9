package mongodb

import (
	"context"
	"time"

	"github.com/greencityconnect/waste-backend/internal/models"
	"github.com/greencityconnect/waste-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time checks to ensure the repositories implement their interfaces
var _ repositories.AnnouncementRepository = (*AnnouncementRepository)(nil)
var _ repositories.AdminMessageRepository = (*AdminMessageRepository)(nil)

// AnnouncementRepository handles MongoDB operations for Announcement
type AnnouncementRepository struct {
	collection *mongo.Collection
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(db *mongo.Database) *AnnouncementRepository {
	return &AnnouncementRepository{
		collection: db.Collection("announcements"),
	}
}

// Create inserts a new announcement
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	announcement.ID = primitive.NewObjectID()
	announcement.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, announcement)
	return err
}

// FindAll retrieves all announcements, newest first
func (r *AnnouncementRepository) FindAll(ctx context.Context) ([]*models.Announcement, error) {
	var announcements []*models.Announcement
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &announcements); err != nil {
		return nil, err
	}
	if announcements == nil {
		announcements = []*models.Announcement{}
	}
	return announcements, nil
}

// AdminMessageRepository handles MongoDB operations for AdminMessage
type AdminMessageRepository struct {
	collection *mongo.Collection
}

// NewAdminMessageRepository creates a new AdminMessageRepository
func NewAdminMessageRepository(db *mongo.Database) *AdminMessageRepository {
	return &AdminMessageRepository{
		collection: db.Collection("adminmessages"),
	}
}

// Create inserts a new direct message
func (r *AdminMessageRepository) Create(ctx context.Context, message *models.AdminMessage) error {
	message.ID = primitive.NewObjectID()
	message.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, message)
	return err
}

// FindByUserID retrieves a user's direct messages, newest first
func (r *AdminMessageRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.AdminMessage, error) {
	var messages []*models.AdminMessage
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []*models.AdminMessage{}
	}
	return messages, nil
}

// CountUnreadByUserID returns the number of unread messages for a user
func (r *AdminMessageRepository) CountUnreadByUserID(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"userId": userID, "read": false})
}

// MarkReadByUserID flips all of a user's messages to read
func (r *AdminMessageRepository) MarkReadByUserID(ctx context.Context, userID primitive.ObjectID) error {
	filter := bson.M{"userId": userID, "read": false}
	update := bson.M{"$set": bson.M{"read": true}}
	_, err := r.collection.UpdateMany(ctx, filter, update)
	return err
}
