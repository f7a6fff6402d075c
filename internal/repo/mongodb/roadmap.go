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

type RoadmapRepository interface {
	Create(ctx context.Context, roadmap *models.Roadmap) error
	GetLatestByUserID(ctx context.Context, userID string) (*models.Roadmap, error)
}

type roadmapRepo struct {
	collection *mongo.Collection
}

func NewRoadmapRepository(db *DB) RoadmapRepository {
	return &roadmapRepo{
		collection: db.Database.Collection("roadmaps"),
	}
}

func (r *roadmapRepo) Create(ctx context.Context, roadmap *models.Roadmap) error {
	roadmap.ID = primitive.NewObjectID()
	roadmap.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, roadmap)
	if err != nil {
		return fmt.Errorf("failed to create roadmap: %w", err)
	}
	return nil
}

func (r *roadmapRepo) GetLatestByUserID(ctx context.Context, userID string) (*models.Roadmap, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var roadmap models.Roadmap
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&roadmap)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get roadmap: %w", err)
	}
	return &roadmap, nil
}
