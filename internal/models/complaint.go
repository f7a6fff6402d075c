package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const ComplaintStatusPending = "pending"

// Complaint is a user-submitted grievance. Status is free text: it starts as
// "pending" and moderators may overwrite it with any value, there is no
// state machine. Complaints carry no link to a student profile.
type Complaint struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Mobile       string             `bson:"mobile" json:"mobile"`
	Address      string             `bson:"address" json:"address"`
	Message      string             `bson:"message" json:"message"`
	Job          *string            `bson:"job,omitempty" json:"job,omitempty"`
	DOB          *string            `bson:"dob,omitempty" json:"dob,omitempty"`
	Age          *int               `bson:"age,omitempty" json:"age,omitempty"`
	AnnualIncome *float64           `bson:"annual_income,omitempty" json:"annual_income,omitempty"`
	Status       string             `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

type RaiseComplaintRequest struct {
	Mobile       string   `json:"mobile" validate:"required"`
	Address      string   `json:"address" validate:"required"`
	Message      string   `json:"message" validate:"required"`
	Job          *string  `json:"job,omitempty"`
	DOB          *string  `json:"dob,omitempty"`
	Age          *int     `json:"age,omitempty"`
	AnnualIncome *float64 `json:"annual_income,omitempty"`
}

type UpdateComplaintStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
