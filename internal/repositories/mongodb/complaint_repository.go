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

// Compile-time check to ensure ComplaintRepository implements the interface
var _ repositories.ComplaintRepository = (*ComplaintRepository)(nil)

// ComplaintRepository handles MongoDB operations for Complaint
type ComplaintRepository struct {
	collection *mongo.Collection
}

// NewComplaintRepository creates a new ComplaintRepository
func NewComplaintRepository(db *mongo.Database) *ComplaintRepository {
	return &ComplaintRepository{
		collection: db.Collection("complaints"),
	}
}

// Create inserts a new complaint
func (r *ComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	complaint.ID = primitive.NewObjectID()
	complaint.CreatedAt = time.Now()
	complaint.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, complaint)
	return err
}

// FindByID finds a complaint by ID
func (r *ComplaintRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Complaint, error) {
	var complaint models.Complaint
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&complaint)
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

// FindByUserID retrieves a user's complaints, newest first
func (r *ComplaintRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*models.Complaint, error) {
	var complaints []*models.Complaint
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &complaints); err != nil {
		return nil, err
	}
	if complaints == nil {
		complaints = []*models.Complaint{}
	}
	return complaints, nil
}

// FindAll retrieves all complaints, newest first
func (r *ComplaintRepository) FindAll(ctx context.Context) ([]*models.Complaint, error) {
	var complaints []*models.Complaint
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &complaints); err != nil {
		return nil, err
	}
	if complaints == nil {
		complaints = []*models.Complaint{}
	}
	return complaints, nil
}

// Update updates an existing complaint
func (r *ComplaintRepository) Update(ctx context.Context, complaint *models.Complaint) error {
	complaint.UpdatedAt = time.Now()
	filter := bson.M{"_id": complaint.ID}
	update := bson.M{"$set": complaint}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Count returns the total number of complaints
func (r *ComplaintRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
