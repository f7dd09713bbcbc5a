package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

type Application struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProjectID     primitive.ObjectID `bson:"project_id" json:"projectId"`
	HackerID      primitive.ObjectID `bson:"hacker_id" json:"hackerId"`
	Proposal      string             `bson:"proposal" json:"proposal"`
	EstimatedTime string             `bson:"estimated_time" json:"estimatedTime"`
	PriceQuote    string             `bson:"price_quote" json:"priceQuote"`
	Status        ApplicationStatus  `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
}
