package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a customer's rating of a purchased policy.
type Review struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserEmail  string             `bson:"userEmail" json:"userEmail"`
	UserName   string             `bson:"userName" json:"userName"`
	UserPhoto  string             `bson:"userPhoto,omitempty" json:"userPhoto,omitempty"`
	PolicyID   primitive.ObjectID `bson:"policyId,omitempty" json:"policyId,omitempty"`
	PolicyName string             `bson:"policyName" json:"policyName"`
	Rating     int                `bson:"rating" json:"rating"`
	Feedback   string             `bson:"feedback" json:"feedback"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
