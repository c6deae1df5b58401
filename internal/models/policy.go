package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Policy is an insurance product offered on the marketplace. PurchaseCount
// only ever goes up, as a side effect of a completed purchase flow.
type Policy struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title           string             `bson:"title" json:"title"`
	Category        string             `bson:"category" json:"category"`
	Description     string             `bson:"description" json:"description"`
	ImageURL        string             `bson:"imageURL,omitempty" json:"imageURL,omitempty"`
	MinAge          int                `bson:"minAge" json:"minAge"`
	MaxAge          int                `bson:"maxAge" json:"maxAge"`
	CoverageRange   string             `bson:"coverageRange" json:"coverageRange"`
	DurationOptions string             `bson:"durationOptions" json:"durationOptions"`
	BasePremiumRate float64            `bson:"basePremiumRate" json:"basePremiumRate"`
	PurchaseCount   int                `bson:"purchaseCount" json:"purchaseCount"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
