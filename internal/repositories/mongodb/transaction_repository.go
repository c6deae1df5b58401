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

// Compile-time check to ensure TransactionRepository implements the interface
var _ repositories.TransactionRepository = (*TransactionRepository)(nil)

// TransactionRepository handles MongoDB operations for Transaction
type TransactionRepository struct {
	collection *mongo.Collection
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(db *mongo.Database) *TransactionRepository {
	return &TransactionRepository{
		collection: db.Collection("transactions"),
	}
}

// Create inserts a new transaction record
func (r *TransactionRepository) Create(ctx context.Context, txn *models.Transaction) error {
	txn.ID = primitive.NewObjectID()
	if txn.Date.IsZero() {
		txn.Date = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, txn)
	return err
}

// FindPage returns one page of transactions sorted by date descending along
// with the unpaginated match count
func (r *TransactionRepository) FindPage(ctx context.Context, q models.TransactionQuery, p query.Params) ([]*models.Transaction, int64, error) {
	f := query.NewFilter().
		ContainsFold("userEmail", q.UserEmail).
		ContainsFold("policyName", q.PolicyName)
	if q.HasDateRange() {
		f.DateRange("date", q.StartDate, q.EndDate)
	}
	filter := f.Build()

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var txns []*models.Transaction
	if err := cursor.All(ctx, &txns); err != nil {
		return nil, 0, err
	}
	if txns == nil {
		txns = []*models.Transaction{}
	}
	return txns, total, nil
}

// TotalPaidAmount sums the amount of every paid transaction, in minor units
func (r *TransactionRepository) TotalPaidAmount(ctx context.Context) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": models.TransactionPaid}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

// CountSince counts transactions dated at or after the given time
func (r *TransactionRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"date": bson.M{"$gte": since}})
}

// CountByStatusSince counts transactions with a status dated at or after the
// given time
func (r *TransactionRepository) CountByStatusSince(ctx context.Context, status string, since time.Time) (int64, error) {
	filter := bson.M{
		"status": status,
		"date":   bson.M{"$gte": since},
	}
	return r.collection.CountDocuments(ctx, filter)
}
