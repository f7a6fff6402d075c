package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/namanpunn/logikxmind-uat/internal/models"
)

type ComplaintRepository interface {
	Create(ctx context.Context, complaint *models.Complaint) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Complaint, error)
	List(ctx context.Context) ([]*models.Complaint, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Complaint, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type complaintRepo struct {
	collection *mongo.Collection
}

func NewComplaintRepository(db *DB) ComplaintRepository {
	return &complaintRepo{
		collection: db.Database.Collection("complaints"),
	}
}

func (r *complaintRepo) Create(ctx context.Context, complaint *models.Complaint) error {
	now := time.Now()
	complaint.ID = primitive.NewObjectID()
	complaint.CreatedAt = now
	complaint.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, complaint)
	if err != nil {
		return fmt.Errorf("failed to create complaint: %w", err)
	}
	return nil
}

func (r *complaintRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Complaint, error) {
	var complaint models.Complaint
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&complaint)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}
	return &complaint, nil
}

func (r *complaintRepo) List(ctx context.Context) ([]*models.Complaint, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	defer cursor.Close(ctx)

	var complaints []*models.Complaint
	for cursor.Next(ctx) {
		var complaint models.Complaint
		if err := cursor.Decode(&complaint); err != nil {
			return nil, fmt.Errorf("failed to decode complaint: %w", err)
		}
		complaints = append(complaints, &complaint)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return complaints, nil
}

// UpdateStatus overwrites status and refreshes updated_at, leaving every
// other field untouched.
func (r *complaintRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (*models.Complaint, error) {
	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var complaint models.Complaint
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&complaint)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update complaint status: %w", err)
	}
	return &complaint, nil
}

func (r *complaintRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete complaint: %w", err)
	}
	if result.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
