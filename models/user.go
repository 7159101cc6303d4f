package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email    string             `json:"email" bson:"email"`
	Password string             `json:"-" bson:"password,omitempty"`
	Name     string             `json:"name" bson:"name,omitempty"`
	GoogleID string             `json:"-" bson:"googleId,omitempty"`
	Verified bool               `json:"verified" bson:"verified"`
}
