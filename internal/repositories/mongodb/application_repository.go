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

// Compile-time check to ensure ApplicationRepository implements the interface
var _ repositories.ApplicationRepository = (*ApplicationRepository)(nil)

// ApplicationRepository handles MongoDB operations for Application
type ApplicationRepository struct {
	collection *mongo.Collection
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{
		collection: db.Collection("applications"),
	}
}

// Create inserts a new application
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	app.ID = primitive.NewObjectID()
	_, err := r.collection.InsertOne(ctx, app)
	return err
}

// FindByID finds an application by ID
func (r *ApplicationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error) {
	var app models.Application
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&app)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// FindByApplicant returns a customer's applications, newest first
func (r *ApplicationRepository) FindByApplicant(ctx context.Context, email string) ([]*models.Application, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var apps []*models.Application
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []*models.Application{}
	}
	return apps, nil
}

// FindPage returns one page of applications sorted by createdAt descending.
// Filtering by agent implies the admin has already approved the application.
func (r *ApplicationRepository) FindPage(ctx context.Context, assignedAgent string, p query.Params) ([]*models.Application, int64, error) {
	f := query.NewFilter().Eq("assignedAgent", assignedAgent)
	if assignedAgent != "" {
		f.Eq("adminAssignStatus", models.AdminStatusApproved)
	}
	filter := f.Build()

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

	var apps []*models.Application
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, 0, err
	}
	if apps == nil {
		apps = []*models.Application{}
	}
	return apps, total, nil
}

// AssignAgent assigns an agent and approves the application
func (r *ApplicationRepository) AssignAgent(ctx context.Context, id primitive.ObjectID, agentEmail string) error {
	update := bson.M{"$set": bson.M{
		"assignedAgent":     agentEmail,
		"adminAssignStatus": models.AdminStatusApproved,
		"agentAssignStatus": models.AgentStatusPending,
		"updatedAt":         time.Now(),
	}}
	return r.updateByID(ctx, id, update)
}

// Reject marks an application as rejected by the admin
func (r *ApplicationRepository) Reject(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{
		"adminAssignStatus": models.AdminStatusRejected,
		"updatedAt":         time.Now(),
	}}
	return r.updateByID(ctx, id, update)
}

// UpdateAgentStatus records the assigned agent's response
func (r *ApplicationRepository) UpdateAgentStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	update := bson.M{"$set": bson.M{
		"agentAssignStatus": status,
		"updatedAt":         time.Now(),
	}}
	return r.updateByID(ctx, id, update)
}

// UpdatePaymentStatus flips the payment state of an application
func (r *ApplicationRepository) UpdatePaymentStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	update := bson.M{"$set": bson.M{
		"paymentStatus": status,
		"updatedAt":     time.Now(),
	}}
	return r.updateByID(ctx, id, update)
}

func (r *ApplicationRepository) updateByID(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
