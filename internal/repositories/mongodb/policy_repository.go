package mongodb

import (
	"context"
	"time"

	"github.com/thrivesecure/thrivesecure-backend/internal/models"
	"github.com/thrivesecure/thrivesecure-backend/internal/query"
	"github.com/thrivesecure/thrivesecure-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure PolicyRepository implements the interface
var _ repositories.PolicyRepository = (*PolicyRepository)(nil)

// PolicyRepository handles MongoDB operations for Policy
type PolicyRepository struct {
	collection *mongo.Collection
}

// NewPolicyRepository creates a new PolicyRepository
func NewPolicyRepository(db *mongo.Database) *PolicyRepository {
	return &PolicyRepository{
		collection: db.Collection("policies"),
	}
}

// Create inserts a new policy
func (r *PolicyRepository) Create(ctx context.Context, policy *models.Policy) error {
	policy.ID = primitive.NewObjectID()
	policy.CreatedAt = time.Now()
	policy.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, policy)
	return err
}

// FindByID finds a policy by ID
func (r *PolicyRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Policy, error) {
	var policy models.Policy
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&policy)
	if err != nil {
		return nil, err
	}
	return &policy, nil
}

// FindPage returns one page of policies sorted by createdAt descending,
// optionally narrowed by category and a title search
func (r *PolicyRepository) FindPage(ctx context.Context, category, search string, p query.Params) ([]*models.Policy, int64, error) {
	filter := query.NewFilter().
		Eq("category", category).
		ContainsFold("title", search).
		Build()

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var policies []*models.Policy
	if err := cursor.All(ctx, &policies); err != nil {
		return nil, 0, err
	}
	if policies == nil {
		policies = []*models.Policy{}
	}
	return policies, total, nil
}

// FindTop returns the most purchased policies
func (r *PolicyRepository) FindTop(ctx context.Context, limit int) ([]*models.Policy, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "purchaseCount", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var policies []*models.Policy
	if err := cursor.All(ctx, &policies); err != nil {
		return nil, err
	}
	if policies == nil {
		policies = []*models.Policy{}
	}
	return policies, nil
}

// Update updates an existing policy
func (r *PolicyRepository) Update(ctx context.Context, policy *models.Policy) error {
	policy.UpdatedAt = time.Now()
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": policy.ID}, policy)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete deletes a policy by ID
func (r *PolicyRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// IncrementPurchaseCount atomically bumps a policy's purchase counter
func (r *PolicyRepository) IncrementPurchaseCount(ctx context.Context, id primitive.ObjectID) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$inc": bson.M{"purchaseCount": 1}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
