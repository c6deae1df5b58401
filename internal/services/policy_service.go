package services

import (
	"context"

	"github.com/thrivesecure/thrivesecure-backend/internal/models"
	"github.com/thrivesecure/thrivesecure-backend/internal/query"
	"github.com/thrivesecure/thrivesecure-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// topPoliciesLimit is how many policies the "most purchased" endpoint returns.
const topPoliciesLimit = 6

// policyService handles policy-related business logic
type policyService struct {
	policyRepo repositories.PolicyRepository
}

// NewPolicyService creates a new PolicyService
func NewPolicyService(policyRepo repositories.PolicyRepository) PolicyService {
	return &policyService{
		policyRepo: policyRepo,
	}
}

// CreatePolicy creates a new policy
func (s *policyService) CreatePolicy(ctx context.Context, policy *models.Policy) error {
	policy.PurchaseCount = 0
	return s.policyRepo.Create(ctx, policy)
}

// GetPolicy retrieves a policy by ID
func (s *policyService) GetPolicy(ctx context.Context, id primitive.ObjectID) (*models.Policy, error) {
	return s.policyRepo.FindByID(ctx, id)
}

// GetPolicies returns one page of policies and the total page count
func (s *policyService) GetPolicies(ctx context.Context, category, search string, p query.Params) ([]*models.Policy, int, error) {
	policies, total, err := s.policyRepo.FindPage(ctx, category, search, p)
	if err != nil {
		return nil, 0, err
	}
	return policies, query.TotalPages(total, p.Limit), nil
}

// GetTopPolicies returns the most purchased policies
func (s *policyService) GetTopPolicies(ctx context.Context) ([]*models.Policy, error) {
	return s.policyRepo.FindTop(ctx, topPoliciesLimit)
}

// UpdatePolicy updates an existing policy
func (s *policyService) UpdatePolicy(ctx context.Context, policy *models.Policy) error {
	return s.policyRepo.Update(ctx, policy)
}

// DeletePolicy deletes a policy by ID
func (s *policyService) DeletePolicy(ctx context.Context, id primitive.ObjectID) error {
	return s.policyRepo.Delete(ctx, id)
}
