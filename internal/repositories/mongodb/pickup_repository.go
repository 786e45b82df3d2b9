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

// Compile-time check to ensure PickupRepository implements the interface
var _ repositories.PickupRepository = (*PickupRepository)(nil)

// PickupRepository handles MongoDB operations for Pickup history
type PickupRepository struct {
	collection *mongo.Collection
}

// NewPickupRepository creates a new PickupRepository
func NewPickupRepository(db *mongo.Database) *PickupRepository {
	return &PickupRepository{
		collection: db.Collection("pickups"),
	}
}

// Create inserts a new pickup record
func (r *PickupRepository) Create(ctx context.Context, pickup *models.Pickup) error {
	pickup.ID = primitive.NewObjectID()
	pickup.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, pickup)
	return err
}

// FindByUserID retrieves a user's pickup history, newest first
func (r *PickupRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Pickup, error) {
	var pickups []*models.Pickup
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &pickups); err != nil {
		return nil, err
	}
	if pickups == nil {
		pickups = []*models.Pickup{}
	}
	return pickups, nil
}
