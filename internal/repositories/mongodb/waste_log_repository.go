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

// Compile-time check to ensure WasteLogRepository implements the interface
var _ repositories.WasteLogRepository = (*WasteLogRepository)(nil)

// WasteLogRepository handles MongoDB operations for WasteLog
type WasteLogRepository struct {
	collection *mongo.Collection
}

// NewWasteLogRepository creates a new WasteLogRepository
func NewWasteLogRepository(db *mongo.Database) *WasteLogRepository {
	return &WasteLogRepository{
		collection: db.Collection("wastelogs"),
	}
}

// Create inserts a new waste log
func (r *WasteLogRepository) Create(ctx context.Context, log *models.WasteLog) error {
	log.ID = primitive.NewObjectID()
	log.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, log)
	return err
}

// FindByUserID retrieves all waste logs for a user, newest first
func (r *WasteLogRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.WasteLog, error) {
	var logs []*models.WasteLog
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []*models.WasteLog{}
	}
	return logs, nil
}

// FindRecentByUserID retrieves the user's most recent waste logs, newest first
func (r *WasteLogRepository) FindRecentByUserID(ctx context.Context, userID primitive.ObjectID, limit int64) ([]*models.WasteLog, error) {
	var logs []*models.WasteLog
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []*models.WasteLog{}
	}
	return logs, nil
}
