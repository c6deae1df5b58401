package services

import (
	"context"
	"errors"

	"github.com/thrivesecure/thrivesecure-backend/internal/models"
	"github.com/thrivesecure/thrivesecure-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/mongo"
)

// newsletterService handles newsletter signups
type newsletterService struct {
	newsletterRepo repositories.NewsletterRepository
}

// NewNewsletterService creates a new NewsletterService
func NewNewsletterService(newsletterRepo repositories.NewsletterRepository) NewsletterService {
	return &newsletterService{
		newsletterRepo: newsletterRepo,
	}
}

// Subscribe stores a signup unless the email is already subscribed. The
// check is not a storage constraint, so concurrent duplicate signups can
// still slip through.
func (s *newsletterService) Subscribe(ctx context.Context, sub *models.NewsletterSubscription) error {
	_, err := s.newsletterRepo.FindByEmail(ctx, sub.Email)
	if err == nil {
		return ErrAlreadySubscribed
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	return s.newsletterRepo.Create(ctx, sub)
}
