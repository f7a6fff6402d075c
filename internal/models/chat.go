package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatEntry is one immutable message in a student's timeline. Message holds
// the raw user text for inbound entries and the structured mentor reply for
// generated ones; IsBot tells them apart.
type ChatEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID string             `bson:"student_id" json:"student_id"`
	Message   any                `bson:"message" json:"message"`
	IsBot     bool               `bson:"is_bot,omitempty" json:"is_bot,omitempty"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

type ChatRequest struct {
	UniqueID string `json:"unique_id" validate:"required"`
	Message  string `json:"message" validate:"required"`
}

type ChatResponse struct {
	UniqueID       string       `json:"unique_id"`
	Response       *MentorReply `json:"response"`
	RequiresAction bool         `json:"requires_action"`
}

// MentorReply is the structured reply the model is instructed to emit inside
// a fenced json block. Decoding is strict; a reply that does not match this
// shape is rejected rather than passed through untyped.
type MentorReply struct {
	Response     string   `bson:"response" json:"response"`
	NextQuestion string   `bson:"next_question,omitempty" json:"next_question,omitempty"`
	RequiresInfo []string `bson:"requires_info,omitempty" json:"requires_info,omitempty"`
	Resources    []string `bson:"resources,omitempty" json:"resources,omitempty"`
}
