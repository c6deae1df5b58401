package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Transaction statuses. Lowercase is canonical.
const (
	TransactionPaid   = "paid"
	TransactionFailed = "failed"
)

// Transaction records one completed payment attempt. Amount is in minor
// currency units (cents). Transactions are never updated after insert.
type Transaction struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PaymentIntentID string             `bson:"paymentIntentId" json:"paymentIntentId"`
	Amount          int64              `bson:"amount" json:"amount"`
	Currency        string             `bson:"currency" json:"currency"`
	UserEmail       string             `bson:"userEmail" json:"userEmail"`
	PolicyID        primitive.ObjectID `bson:"policyId,omitempty" json:"policyId,omitempty"`
	PolicyName      string             `bson:"policyName" json:"policyName"`
	Status          string             `bson:"status" json:"status"`
	Date            time.Time          `bson:"date" json:"date"`
}

// TransactionQuery carries the optional filters for the transaction list.
// The date range applies only when both ends are set; the email and policy
// filters are case-insensitive substring matches.
type TransactionQuery struct {
	StartDate  time.Time
	EndDate    time.Time
	UserEmail  string
	PolicyName string
}

// HasDateRange reports whether both ends of the date range were supplied.
func (q TransactionQuery) HasDateRange() bool {
	return !q.StartDate.IsZero() && !q.EndDate.IsZero()
}

// TransactionSummary holds the derived aggregate statistics returned next to
// a transaction page. TotalIncome is in major currency units.
type TransactionSummary struct {
	TotalIncome float64 `json:"totalIncome"`
	SuccessRate float64 `json:"successRate"`
	FailRate    float64 `json:"failRate"`
}
