package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserType string

const (
	UserTypeClient UserType = "client"
	UserTypeHacker UserType = "hacker"
	UserTypeAdmin  UserType = "admin"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password" json:"-"`
	UserType     UserType           `bson:"user_type" json:"userType"`
	FullName     string             `bson:"full_name" json:"fullName"`
	Company      string             `bson:"company,omitempty" json:"company,omitempty"`
	Title        string             `bson:"title,omitempty" json:"title,omitempty"`
	Bio          string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Location     string             `bson:"location,omitempty" json:"location,omitempty"`
	ProfileImage string             `bson:"profile_image,omitempty" json:"profileImage,omitempty"`
	IsVerified   bool               `bson:"is_verified" json:"isVerified"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
}
