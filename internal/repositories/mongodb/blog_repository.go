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

// Compile-time check to ensure BlogRepository implements the interface
var _ repositories.BlogRepository = (*BlogRepository)(nil)

// BlogRepository handles MongoDB operations for Blog
type BlogRepository struct {
	collection *mongo.Collection
}

// NewBlogRepository creates a new BlogRepository
func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{
		collection: db.Collection("blogs"),
	}
}

// Create inserts a new blog
func (r *BlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	blog.ID = primitive.NewObjectID()
	if blog.PublishDate.IsZero() {
		blog.PublishDate = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, blog)
	return err
}

// FindByID returns a blog after incrementing its visit counter
func (r *BlogRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	filter := bson.M{"_id": id}
	update := bson.M{"$inc": bson.M{"totalVisits": 1}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var blog models.Blog
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&blog)
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindPage returns one page of blogs sorted by publishDate descending,
// optionally filtered by author email
func (r *BlogRepository) FindPage(ctx context.Context, authorEmail string, p query.Params) ([]*models.Blog, int64, error) {
	filter := query.NewFilter().Eq("authorEmail", authorEmail).Build()

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "publishDate", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(int64(p.Limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var blogs []*models.Blog
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, 0, err
	}
	if blogs == nil {
		blogs = []*models.Blog{}
	}
	return blogs, total, nil
}

// FindLatest returns the most recently published blogs
func (r *BlogRepository) FindLatest(ctx context.Context, limit int) ([]*models.Blog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "publishDate", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var blogs []*models.Blog
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}
	if blogs == nil {
		blogs = []*models.Blog{}
	}
	return blogs, nil
}

// Update updates an existing blog
func (r *BlogRepository) Update(ctx context.Context, blog *models.Blog) error {
	update := bson.M{"$set": bson.M{
		"title":    blog.Title,
		"content":  blog.Content,
		"imageURL": blog.ImageURL,
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": blog.ID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete deletes a blog by ID
func (r *BlogRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
