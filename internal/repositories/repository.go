package repositories

import (
	"context"
	"time"

	"github.com/thrivesecure/thrivesecure-backend/internal/models"
	"github.com/thrivesecure/thrivesecure-backend/internal/query"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, email string, at time.Time) error
	// FindPage returns one page of users sorted by createdAt descending,
	// optionally filtered by role, plus the unpaginated match count.
	FindPage(ctx context.Context, role string, p query.Params) ([]*models.User, int64, error)
	UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ApplicationRepository defines the interface for application data operations
type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error)
	FindByApplicant(ctx context.Context, email string) ([]*models.Application, error)
	// FindPage returns one page of applications sorted by createdAt
	// descending. A non-empty assignedAgent also constrains the page to
	// admin-approved applications.
	FindPage(ctx context.Context, assignedAgent string, p query.Params) ([]*models.Application, int64, error)
	AssignAgent(ctx context.Context, id primitive.ObjectID, agentEmail string) error
	Reject(ctx context.Context, id primitive.ObjectID) error
	UpdateAgentStatus(ctx context.Context, id primitive.ObjectID, status string) error
	UpdatePaymentStatus(ctx context.Context, id primitive.ObjectID, status string) error
}

// PolicyRepository defines the interface for policy data operations
type PolicyRepository interface {
	Create(ctx context.Context, policy *models.Policy) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Policy, error)
	FindPage(ctx context.Context, category, search string, p query.Params) ([]*models.Policy, int64, error)
	FindTop(ctx context.Context, limit int) ([]*models.Policy, error)
	Update(ctx context.Context, policy *models.Policy) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	IncrementPurchaseCount(ctx context.Context, id primitive.ObjectID) error
}

// TransactionRepository defines the interface for transaction data operations
type TransactionRepository interface {
	Create(ctx context.Context, txn *models.Transaction) error
	FindPage(ctx context.Context, q models.TransactionQuery, p query.Params) ([]*models.Transaction, int64, error)
	// TotalPaidAmount sums amount over every paid transaction in the
	// collection, in minor units, regardless of any page filters.
	TotalPaidAmount(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
	CountByStatusSince(ctx context.Context, status string, since time.Time) (int64, error)
}

// BlogRepository defines the interface for blog data operations
type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	// FindByID returns the blog after incrementing its visit counter.
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	FindPage(ctx context.Context, authorEmail string, p query.Params) ([]*models.Blog, int64, error)
	FindLatest(ctx context.Context, limit int) ([]*models.Blog, error)
	Update(ctx context.Context, blog *models.Blog) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ReviewRepository defines the interface for review data operations
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	FindLatest(ctx context.Context, limit int) ([]*models.Review, error)
}

// ClaimRepository defines the interface for claim data operations
type ClaimRepository interface {
	Create(ctx context.Context, claim *models.Claim) error
	// FindByEmail returns claims sorted by createdAt descending; an empty
	// email returns every claim.
	FindByEmail(ctx context.Context, email string) ([]*models.Claim, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
}

// NewsletterRepository defines the interface for newsletter signups
type NewsletterRepository interface {
	Create(ctx context.Context, sub *models.NewsletterSubscription) error
	FindByEmail(ctx context.Context, email string) (*models.NewsletterSubscription, error)
}
