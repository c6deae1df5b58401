package mongodb

import (
	"context"
	"time"

	"github.com/thrivesecure/thrivesecure-backend/internal/models"
	"github.com/thrivesecure/thrivesecure-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure NewsletterRepository implements the interface
var _ repositories.NewsletterRepository = (*NewsletterRepository)(nil)

// NewsletterRepository handles MongoDB operations for newsletter signups
type NewsletterRepository struct {
	collection *mongo.Collection
}

// NewNewsletterRepository creates a new NewsletterRepository
func NewNewsletterRepository(db *mongo.Database) *NewsletterRepository {
	return &NewsletterRepository{
		collection: db.Collection("newsletterSubscriptions"),
	}
}

// Create inserts a new subscription
func (r *NewsletterRepository) Create(ctx context.Context, sub *models.NewsletterSubscription) error {
	sub.ID = primitive.NewObjectID()
	if sub.SubscribedAt.IsZero() {
		sub.SubscribedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, sub)
	return err
}

// FindByEmail finds a subscription by email
func (r *NewsletterRepository) FindByEmail(ctx context.Context, email string) (*models.NewsletterSubscription, error) {
	var sub models.NewsletterSubscription
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&sub)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &sub, nil
}
