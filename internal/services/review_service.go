package services

import (
	"context"

	"github.com/thrivesecure/thrivesecure-backend/internal/models"
	"github.com/thrivesecure/thrivesecure-backend/internal/repositories"
)

// latestReviewsLimit is how many reviews the landing page strip shows.
const latestReviewsLimit = 6

// reviewService handles review-related business logic
type reviewService struct {
	reviewRepo repositories.ReviewRepository
}

// NewReviewService creates a new ReviewService
func NewReviewService(reviewRepo repositories.ReviewRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
	}
}

// AddReview stores a review, clamping the rating into the 1..5 range
func (s *reviewService) AddReview(ctx context.Context, review *models.Review) error {
	if review.Rating < 1 {
		review.Rating = 1
	}
	if review.Rating > 5 {
		review.Rating = 5
	}
	return s.reviewRepo.Create(ctx, review)
}

// GetLatestReviews returns the most recent reviews
func (s *reviewService) GetLatestReviews(ctx context.Context) ([]*models.Review, error) {
	return s.reviewRepo.FindLatest(ctx, latestReviewsLimit)
}
