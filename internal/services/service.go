package services

import (
	"context"
	"errors"

	"github.com/thrivesecure/thrivesecure-backend/internal/models"
	"github.com/thrivesecure/thrivesecure-backend/internal/query"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Validation failures surfaced to handlers as 400s.
var (
	ErrInvalidRole       = errors.New("invalid role")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrAlreadySubscribed = errors.New("email already subscribed")
)

// UserService defines the interface for user-related operations
type UserService interface {
	// SignIn upserts a user record: first sign-in inserts, every later
	// sign-in bumps lastLogin. The bool reports whether an insert happened.
	SignIn(ctx context.Context, user *models.User) (bool, error)

	// GetUserByEmail retrieves a user by email
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUsers returns one page of users plus the total page count,
	// optionally filtered by role
	GetUsers(ctx context.Context, role string, p query.Params) ([]*models.User, int, error)

	// UpdateRole changes a user's role, validated against the closed set
	UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (*models.User, error)

	// DeleteUser deletes a user by ID
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
}

// ApplicationService defines the interface for application-related operations
type ApplicationService interface {
	// Submit records a customer's policy application
	Submit(ctx context.Context, app *models.Application) error

	// GetApplication retrieves an application by ID
	GetApplication(ctx context.Context, id primitive.ObjectID) (*models.Application, error)

	// GetApplicationsByApplicant returns a customer's own applications
	GetApplicationsByApplicant(ctx context.Context, email string) ([]*models.Application, error)

	// GetApplications returns one page of applications plus the total page
	// count, optionally filtered by assigned agent
	GetApplications(ctx context.Context, assignedAgent string, p query.Params) ([]*models.Application, int, error)

	// AssignAgent assigns an agent and approves the application
	AssignAgent(ctx context.Context, id primitive.ObjectID, agentEmail string) error

	// Reject marks an application as rejected by the admin
	Reject(ctx context.Context, id primitive.ObjectID) error

	// UpdateAgentStatus records the assigned agent's accept/reject response
	UpdateAgentStatus(ctx context.Context, id primitive.ObjectID, status string) error

	// MarkPaymentPaid flips the application to paid and bumps the purchase
	// count on the referenced policy
	MarkPaymentPaid(ctx context.Context, id primitive.ObjectID) error
}

// PolicyService defines the interface for policy-related operations
type PolicyService interface {
	CreatePolicy(ctx context.Context, policy *models.Policy) error
	GetPolicy(ctx context.Context, id primitive.ObjectID) (*models.Policy, error)
	GetPolicies(ctx context.Context, category, search string, p query.Params) ([]*models.Policy, int, error)
	GetTopPolicies(ctx context.Context) ([]*models.Policy, error)
	UpdatePolicy(ctx context.Context, policy *models.Policy) error
	DeletePolicy(ctx context.Context, id primitive.ObjectID) error
}

// TransactionService defines the interface for transaction-related operations
type TransactionService interface {
	// Record stores one completed payment attempt
	Record(ctx context.Context, txn *models.Transaction) error

	// GetTransactions returns one page of transactions, the total page
	// count, and the collection-wide summary
	GetTransactions(ctx context.Context, q models.TransactionQuery, p query.Params) ([]*models.Transaction, int, *models.TransactionSummary, error)

	// Summary computes total income over all paid transactions and the
	// success/fail rates over the trailing 30 days
	Summary(ctx context.Context) (*models.TransactionSummary, error)
}

// BlogService defines the interface for blog-related operations
type BlogService interface {
	CreateBlog(ctx context.Context, blog *models.Blog) error
	GetBlog(ctx context.Context, id primitive.ObjectID) (*models.Blog, error)
	GetBlogs(ctx context.Context, authorEmail string, p query.Params) ([]*models.Blog, int, error)
	GetLatestBlogs(ctx context.Context) ([]*models.Blog, error)
	UpdateBlog(ctx context.Context, blog *models.Blog) error
	DeleteBlog(ctx context.Context, id primitive.ObjectID) error
}

// ReviewService defines the interface for review-related operations
type ReviewService interface {
	AddReview(ctx context.Context, review *models.Review) error
	GetLatestReviews(ctx context.Context) ([]*models.Review, error)
}

// ClaimService defines the interface for claim-related operations
type ClaimService interface {
	FileClaim(ctx context.Context, claim *models.Claim) error
	GetClaims(ctx context.Context, email string) ([]*models.Claim, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
}

// NewsletterService defines the interface for newsletter signups
type NewsletterService interface {
	Subscribe(ctx context.Context, sub *models.NewsletterSubscription) error
}

// PaymentGateway is the boundary to the card payment processor.
type PaymentGateway interface {
	CreatePaymentIntent(amount int64, currency string) (string, error)
}

// PaymentService defines the interface for payment-intent creation
type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error)
}
