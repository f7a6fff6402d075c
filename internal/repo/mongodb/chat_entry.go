package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/namanpunn/logikxmind-uat/internal/models"
)

// RecentHistoryLimit caps how much conversation context is assembled into a
// generation prompt.
const RecentHistoryLimit = 10

type ChatEntryRepository interface {
	Append(ctx context.Context, entry *models.ChatEntry) error
	Recent(ctx context.Context, studentID string, limit int) ([]*models.ChatEntry, error)
}

type chatEntryRepo struct {
	collection *mongo.Collection
}

func NewChatEntryRepository(db *DB) ChatEntryRepository {
	return &chatEntryRepo{
		collection: db.Database.Collection("chat_entries"),
	}
}

func (r *chatEntryRepo) Append(ctx context.Context, entry *models.ChatEntry) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return fmt.Errorf("failed to append chat entry: %w", err)
	}
	return nil
}

// recentFindOptions sorts newest-first and caps the result set, so a busy
// history never returns more than limit entries.
func recentFindOptions(limit int) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))
}

func (r *chatEntryRepo) Recent(ctx context.Context, studentID string, limit int) ([]*models.ChatEntry, error) {
	filter := bson.M{"student_id": studentID}

	cursor, err := r.collection.Find(ctx, filter, recentFindOptions(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to get recent chat entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []*models.ChatEntry
	for cursor.Next(ctx) {
		var entry models.ChatEntry
		if err := cursor.Decode(&entry); err != nil {
			return nil, fmt.Errorf("failed to decode chat entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return entries, nil
}
