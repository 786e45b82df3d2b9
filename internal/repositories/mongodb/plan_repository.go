package mongodb

import (
	"context"
	"time"

	"github.com/greencityconnect/waste-backend/internal/models"
	"github.com/greencityconnect/waste-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure PlanRepository implements the interface
var _ repositories.PlanRepository = (*PlanRepository)(nil)

// PlanRepository handles MongoDB operations for SubscriptionPlan
type PlanRepository struct {
	collection *mongo.Collection
}

// NewPlanRepository creates a new PlanRepository
func NewPlanRepository(db *mongo.Database) *PlanRepository {
	return &PlanRepository{
		collection: db.Collection("subscriptionplans"),
	}
}

// Create inserts a new subscription plan
func (r *PlanRepository) Create(ctx context.Context, plan *models.SubscriptionPlan) error {
	plan.CreatedAt = time.Now()
	plan.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, plan)
	return err
}

// FindByID finds a plan by its string ID
func (r *PlanRepository) FindByID(ctx context.Context, id string) (*models.SubscriptionPlan, error) {
	var plan models.SubscriptionPlan
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&plan)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// FindAll retrieves the plan catalog ordered by monthly price
func (r *PlanRepository) FindAll(ctx context.Context) ([]*models.SubscriptionPlan, error) {
	var plans []*models.SubscriptionPlan
	opts := options.Find().SetSort(bson.D{{Key: "pricePerMonth", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	if plans == nil {
		plans = []*models.SubscriptionPlan{}
	}
	return plans, nil
}

// Update updates an existing plan
func (r *PlanRepository) Update(ctx context.Context, plan *models.SubscriptionPlan) error {
	plan.UpdatedAt = time.Now()
	filter := bson.M{"_id": plan.ID}
	update := bson.M{"$set": plan}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a plan from the catalog
func (r *PlanRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Count returns the number of plans in the catalog
func (r *PlanRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
