package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Claim statuses.
const (
	ClaimPending  = "Pending"
	ClaimApproved = "Approved"
)

// Claim is a customer's claim against a purchased policy.
type Claim struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserEmail   string             `bson:"userEmail" json:"userEmail"`
	PolicyID    primitive.ObjectID `bson:"policyId,omitempty" json:"policyId,omitempty"`
	PolicyName  string             `bson:"policyName" json:"policyName"`
	Reason      string             `bson:"reason" json:"reason"`
	DocumentURL string             `bson:"documentURL,omitempty" json:"documentURL,omitempty"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
