package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/namanpunn/logikxmind-uat/internal/models"
)

type StudentRepository interface {
	// GetOrCreate resolves uniqueID to a profile. An id that is not valid
	// ObjectId hex, or that matches no document, falls through to creating a
	// fresh empty profile; the second return reports whether one was created.
	GetOrCreate(ctx context.Context, uniqueID string) (*models.Student, bool, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error)
}

type studentRepo struct {
	collection *mongo.Collection
}

func NewStudentRepository(db *DB) StudentRepository {
	return &studentRepo{
		collection: db.Database.Collection("students"),
	}
}

func (r *studentRepo) GetOrCreate(ctx context.Context, uniqueID string) (*models.Student, bool, error) {
	if oid, err := primitive.ObjectIDFromHex(uniqueID); err == nil {
		student, err := r.GetByID(ctx, oid)
		if err == nil {
			return student, false, nil
		}
		if !errors.Is(err, models.ErrNotFound) {
			return nil, false, err
		}
	}

	student := &models.Student{ID: primitive.NewObjectID()}
	if _, err := r.collection.InsertOne(ctx, student); err != nil {
		return nil, false, fmt.Errorf("failed to create student: %w", err)
	}
	return student, true, nil
}

func (r *studentRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Student, error) {
	var student models.Student
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&student)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return &student, nil
}
