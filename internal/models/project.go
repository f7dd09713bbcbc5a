package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProjectStatus string

const (
	ProjectStatusOpen       ProjectStatus = "open"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusCancelled  ProjectStatus = "cancelled"
)

// Defaults applied at write time when the caller omits the field.
const (
	DefaultBudget    = "$1,000 - $5,000"
	DefaultTimeframe = "2-4 weeks"
)

type Project struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID          primitive.ObjectID `bson:"client_id" json:"clientId"`
	Title             string             `bson:"title" json:"title"`
	Description       string             `bson:"description" json:"description"`
	Requirements      string             `bson:"requirements" json:"requirements"`
	AdditionalDetails string             `bson:"additional_details,omitempty" json:"additionalDetails,omitempty"`
	Budget            string             `bson:"budget" json:"budget"`
	Timeframe         string             `bson:"timeframe" json:"timeframe"`
	Status            ProjectStatus      `bson:"status" json:"status"`
	Skills            []string           `bson:"skills" json:"skills"`
	CreatedAt         time.Time          `bson:"created_at" json:"createdAt"`
}
