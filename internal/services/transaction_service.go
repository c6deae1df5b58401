package services

import (
	"context"
	"math"
	"time"

	"github.com/thrivesecure/thrivesecure-backend/internal/models"
	"github.com/thrivesecure/thrivesecure-backend/internal/query"
	"github.com/thrivesecure/thrivesecure-backend/internal/repositories"
)

// summaryWindow is the trailing window for the success/fail rates.
const summaryWindow = 30 * 24 * time.Hour

// transactionService handles transaction-related business logic
type transactionService struct {
	txnRepo repositories.TransactionRepository
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(txnRepo repositories.TransactionRepository) TransactionService {
	return &transactionService{
		txnRepo: txnRepo,
	}
}

// Record stores one completed payment attempt
func (s *transactionService) Record(ctx context.Context, txn *models.Transaction) error {
	if txn.Status != models.TransactionPaid && txn.Status != models.TransactionFailed {
		return ErrInvalidStatus
	}
	return s.txnRepo.Create(ctx, txn)
}

// GetTransactions returns one page of transactions, the total page count,
// and the collection-wide summary
func (s *transactionService) GetTransactions(ctx context.Context, q models.TransactionQuery, p query.Params) ([]*models.Transaction, int, *models.TransactionSummary, error) {
	txns, total, err := s.txnRepo.FindPage(ctx, q, p)
	if err != nil {
		return nil, 0, nil, err
	}

	summary, err := s.Summary(ctx)
	if err != nil {
		return nil, 0, nil, err
	}

	return txns, query.TotalPages(total, p.Limit), summary, nil
}

// Summary computes total income over all paid transactions, independent of
// any page filters, and success/fail rates over the trailing 30 days. The
// rate denominator floors at 1 so an empty window yields zero rates.
func (s *transactionService) Summary(ctx context.Context) (*models.TransactionSummary, error) {
	totalPaid, err := s.txnRepo.TotalPaidAmount(ctx)
	if err != nil {
		return nil, err
	}

	since := time.Now().Add(-summaryWindow)
	windowTotal, err := s.txnRepo.CountSince(ctx, since)
	if err != nil {
		return nil, err
	}
	paidCount, err := s.txnRepo.CountByStatusSince(ctx, models.TransactionPaid, since)
	if err != nil {
		return nil, err
	}
	failedCount, err := s.txnRepo.CountByStatusSince(ctx, models.TransactionFailed, since)
	if err != nil {
		return nil, err
	}

	denom := windowTotal
	if denom < 1 {
		denom = 1
	}

	return &models.TransactionSummary{
		TotalIncome: roundTwo(float64(totalPaid) / 100),
		SuccessRate: roundTwo(float64(paidCount) / float64(denom) * 100),
		FailRate:    roundTwo(float64(failedCount) / float64(denom) * 100),
	}, nil
}

func roundTwo(x float64) float64 {
	return math.Round(x*100) / 100
}
