package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student is the per-user mentoring profile. Every field besides the
// identifier is optional: profiles created on the chat path start empty and
// are filled in out of band, so readers must tolerate absent values.
type Student struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      *string            `bson:"name,omitempty" json:"name,omitempty"`
	Grade     *int               `bson:"grade,omitempty" json:"grade,omitempty"`
	Major     *string            `bson:"major,omitempty" json:"major,omitempty"`
	Interests []string           `bson:"interests,omitempty" json:"interests,omitempty"`
	Goals     []string           `bson:"goals,omitempty" json:"goals,omitempty"`
}
