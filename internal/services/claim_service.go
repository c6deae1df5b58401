package services

import (
	"context"

	"github.com/thrivesecure/thrivesecure-backend/internal/models"
	"github.com/thrivesecure/thrivesecure-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// claimService handles claim-related business logic
type claimService struct {
	claimRepo repositories.ClaimRepository
}

// NewClaimService creates a new ClaimService
func NewClaimService(claimRepo repositories.ClaimRepository) ClaimService {
	return &claimService{
		claimRepo: claimRepo,
	}
}

// FileClaim stores a new claim in the pending state
func (s *claimService) FileClaim(ctx context.Context, claim *models.Claim) error {
	claim.Status = models.ClaimPending
	return s.claimRepo.Create(ctx, claim)
}

// GetClaims returns claims, optionally narrowed to one customer
func (s *claimService) GetClaims(ctx context.Context, email string) ([]*models.Claim, error) {
	return s.claimRepo.FindByEmail(ctx, email)
}

// UpdateStatus sets a claim's status after validating it
func (s *claimService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	if status != models.ClaimPending && status != models.ClaimApproved {
		return ErrInvalidStatus
	}
	return s.claimRepo.UpdateStatus(ctx, id, status)
}
