package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProjectID primitive.ObjectID `bson:"project_id" json:"projectId"`
	ClientID  primitive.ObjectID `bson:"client_id" json:"clientId"`
	HackerID  primitive.ObjectID `bson:"hacker_id" json:"hackerId"`
	Rating    int                `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment,omitempty" json:"comment,omitempty"`
	Featured  bool               `bson:"featured" json:"featured"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
