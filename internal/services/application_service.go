package services

import (
	"context"
	"errors"
	"time"

	"github.com/thrivesecure/thrivesecure-backend/internal/models"
	"github.com/thrivesecure/thrivesecure-backend/internal/query"
	"github.com/thrivesecure/thrivesecure-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// applicationService handles application-related business logic
type applicationService struct {
	appRepo    repositories.ApplicationRepository
	policyRepo repositories.PolicyRepository
	logger     *zap.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(appRepo repositories.ApplicationRepository, policyRepo repositories.PolicyRepository, logger *zap.Logger) ApplicationService {
	return &applicationService{
		appRepo:    appRepo,
		policyRepo: policyRepo,
		logger:     logger,
	}
}

// Submit records a customer's policy application with pending statuses
func (s *applicationService) Submit(ctx context.Context, app *models.Application) error {
	now := time.Now()
	app.AdminAssignStatus = models.AdminStatusPending
	app.AgentAssignStatus = ""
	app.AssignedAgent = ""
	app.PaymentStatus = models.PaymentStatusDue
	app.CreatedAt = now
	app.UpdatedAt = now
	return s.appRepo.Create(ctx, app)
}

// GetApplication retrieves an application by ID
func (s *applicationService) GetApplication(ctx context.Context, id primitive.ObjectID) (*models.Application, error) {
	return s.appRepo.FindByID(ctx, id)
}

// GetApplicationsByApplicant returns a customer's own applications
func (s *applicationService) GetApplicationsByApplicant(ctx context.Context, email string) ([]*models.Application, error) {
	return s.appRepo.FindByApplicant(ctx, email)
}

// GetApplications returns one page of applications and the total page count
func (s *applicationService) GetApplications(ctx context.Context, assignedAgent string, p query.Params) ([]*models.Application, int, error) {
	apps, total, err := s.appRepo.FindPage(ctx, assignedAgent, p)
	if err != nil {
		return nil, 0, err
	}
	return apps, query.TotalPages(total, p.Limit), nil
}

// AssignAgent assigns an agent and approves the application
func (s *applicationService) AssignAgent(ctx context.Context, id primitive.ObjectID, agentEmail string) error {
	return s.appRepo.AssignAgent(ctx, id, agentEmail)
}

// Reject marks an application as rejected by the admin
func (s *applicationService) Reject(ctx context.Context, id primitive.ObjectID) error {
	return s.appRepo.Reject(ctx, id)
}

// UpdateAgentStatus records the assigned agent's accept/reject response
func (s *applicationService) UpdateAgentStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	if status != models.AgentStatusAccepted && status != models.AgentStatusRejected {
		return ErrInvalidStatus
	}
	return s.appRepo.UpdateAgentStatus(ctx, id, status)
}

// MarkPaymentPaid flips the application to paid and bumps the purchase count
// on the referenced policy. A dangling policy reference is logged, not
// treated as a failure.
func (s *applicationService) MarkPaymentPaid(ctx context.Context, id primitive.ObjectID) error {
	app, err := s.appRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.appRepo.UpdatePaymentStatus(ctx, id, models.PaymentStatusPaid); err != nil {
		return err
	}

	if app.PolicyID.IsZero() {
		return nil
	}
	if err := s.policyRepo.IncrementPurchaseCount(ctx, app.PolicyID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			s.logger.Warn("purchase count not incremented: policy missing",
				zap.String("applicationId", id.Hex()),
				zap.String("policyId", app.PolicyID.Hex()))
			return nil
		}
		return err
	}
	return nil
}
