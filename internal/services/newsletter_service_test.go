package services

import (
	"context"
	"testing"

	"github.com/thrivesecure/thrivesecure-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeNewsletterRepo struct {
	subs []*models.NewsletterSubscription
}

func (f *fakeNewsletterRepo) Create(ctx context.Context, sub *models.NewsletterSubscription) error {
	sub.ID = primitive.NewObjectID()
	f.subs = append(f.subs, sub)
	return nil
}

func (f *fakeNewsletterRepo) FindByEmail(ctx context.Context, email string) (*models.NewsletterSubscription, error) {
	for _, s := range f.subs {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func TestSubscribeRejectsDuplicateEmail(t *testing.T) {
	repo := &fakeNewsletterRepo{}
	svc := NewNewsletterService(repo)

	sub := &models.NewsletterSubscription{Name: "Ana", Email: "ana@example.com"}
	if err := svc.Subscribe(context.Background(), sub); err != nil {
		t.Fatalf("Subscribe() error: %v", err)
	}

	again := &models.NewsletterSubscription{Name: "Ana", Email: "ana@example.com"}
	if err := svc.Subscribe(context.Background(), again); err != ErrAlreadySubscribed {
		t.Fatalf("Subscribe() error = %v, want ErrAlreadySubscribed", err)
	}
	if len(repo.subs) != 1 {
		t.Fatalf("expected 1 subscription, got %d", len(repo.subs))
	}
}
