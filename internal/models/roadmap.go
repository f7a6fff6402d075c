package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RoadmapStatusDraft = "draft"

// UserData is the career-pipeline input: a richer profile snapshot than the
// chat-side Student record, submitted by the caller rather than stored.
type UserData struct {
	ID             string              `json:"id" validate:"required"`
	Email          string              `json:"email" validate:"required,email"`
	Skills         []string            `json:"skills"`
	Certifications []string            `json:"certifications"`
	CareerGoals    map[string][]string `json:"career_goals"`
	Education      []map[string]any    `json:"education"`
	Experience     []map[string]any    `json:"experience"`
	Progress       map[string]int      `json:"progress,omitempty"`
}

type Milestone struct {
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Duration    string   `bson:"duration,omitempty" json:"duration,omitempty"`
	Resources   []string `bson:"resources,omitempty" json:"resources,omitempty"`
}

type Roadmap struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string             `bson:"user_id" json:"user_id"`
	Title      string             `bson:"title" json:"title"`
	Milestones []Milestone        `bson:"milestones" json:"milestones"`
	Feedback   []string           `bson:"feedback,omitempty" json:"feedback,omitempty"`
	Status     string             `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
