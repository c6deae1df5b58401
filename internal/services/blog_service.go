package services

import (
	"context"

	"github.com/thrivesecure/thrivesecure-backend/internal/models"
	"github.com/thrivesecure/thrivesecure-backend/internal/query"
	"github.com/thrivesecure/thrivesecure-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// latestBlogsLimit is how many blogs the landing page strip shows.
const latestBlogsLimit = 4

// blogService handles blog-related business logic
type blogService struct {
	blogRepo repositories.BlogRepository
}

// NewBlogService creates a new BlogService
func NewBlogService(blogRepo repositories.BlogRepository) BlogService {
	return &blogService{
		blogRepo: blogRepo,
	}
}

// CreateBlog creates a new blog
func (s *blogService) CreateBlog(ctx context.Context, blog *models.Blog) error {
	blog.TotalVisits = 0
	return s.blogRepo.Create(ctx, blog)
}

// GetBlog retrieves a blog by ID, counting the visit
func (s *blogService) GetBlog(ctx context.Context, id primitive.ObjectID) (*models.Blog, error) {
	return s.blogRepo.FindByID(ctx, id)
}

// GetBlogs returns one page of blogs and the total page count
func (s *blogService) GetBlogs(ctx context.Context, authorEmail string, p query.Params) ([]*models.Blog, int, error) {
	blogs, total, err := s.blogRepo.FindPage(ctx, authorEmail, p)
	if err != nil {
		return nil, 0, err
	}
	return blogs, query.TotalPages(total, p.Limit), nil
}

// GetLatestBlogs returns the most recently published blogs
func (s *blogService) GetLatestBlogs(ctx context.Context) ([]*models.Blog, error) {
	return s.blogRepo.FindLatest(ctx, latestBlogsLimit)
}

// UpdateBlog updates an existing blog
func (s *blogService) UpdateBlog(ctx context.Context, blog *models.Blog) error {
	return s.blogRepo.Update(ctx, blog)
}

// DeleteBlog deletes a blog by ID
func (s *blogService) DeleteBlog(ctx context.Context, id primitive.ObjectID) error {
	return s.blogRepo.Delete(ctx, id)
}
