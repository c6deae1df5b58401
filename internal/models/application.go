package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin decision on an application.
const (
	AdminStatusPending  = "Pending"
	AdminStatusApproved = "Approved"
	AdminStatusRejected = "Rejected"
)

// Agent response to an assignment.
const (
	AgentStatusPending  = "Pending"
	AgentStatusAccepted = "Accepted"
	AgentStatusRejected = "Rejected"
)

// Payment state of an application.
const (
	PaymentStatusDue  = "due"
	PaymentStatusPaid = "paid"
)

// Nominee is the person nominated on a policy application.
type Nominee struct {
	Name         string `bson:"name" json:"name"`
	Relationship string `bson:"relationship" json:"relationship"`
	NID          string `bson:"nid,omitempty" json:"nid,omitempty"`
}

// Application is a customer's submission for a policy. Admins approve or
// reject it and assign an agent; the payment flow flips paymentStatus.
type Application struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FullName          string             `bson:"fullName" json:"fullName"`
	Email             string             `bson:"email" json:"email"`
	NID               string             `bson:"nid" json:"nid"`
	Address           string             `bson:"address" json:"address"`
	DateOfBirth       string             `bson:"dob" json:"dob"`
	Phone             string             `bson:"phone" json:"phone"`
	Nominee           Nominee            `bson:"nominee" json:"nominee"`
	PolicyID          primitive.ObjectID `bson:"policyId,omitempty" json:"policyId,omitempty"`
	PolicyName        string             `bson:"policyName" json:"policyName"`
	AdminAssignStatus string             `bson:"adminAssignStatus" json:"adminAssignStatus"`
	AssignedAgent     string             `bson:"assignedAgent,omitempty" json:"assignedAgent,omitempty"`
	AgentAssignStatus string             `bson:"agentAssignStatus,omitempty" json:"agentAssignStatus,omitempty"`
	PaymentStatus     string             `bson:"paymentStatus" json:"paymentStatus"`
	EstimatedPremium  float64            `bson:"estimatedPremium,omitempty" json:"estimatedPremium,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}
