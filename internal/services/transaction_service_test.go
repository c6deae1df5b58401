package services

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/thrivesecure/thrivesecure-backend/internal/models"
	"github.com/thrivesecure/thrivesecure-backend/internal/query"
)

// fakeTransactionRepo is an in-memory stand-in for the Mongo repository.
type fakeTransactionRepo struct {
	txns []*models.Transaction
}

func (f *fakeTransactionRepo) Create(ctx context.Context, txn *models.Transaction) error {
	f.txns = append(f.txns, txn)
	return nil
}

func (f *fakeTransactionRepo) FindPage(ctx context.Context, q models.TransactionQuery, p query.Params) ([]*models.Transaction, int64, error) {
	var matched []*models.Transaction
	for _, txn := range f.txns {
		if q.UserEmail != "" && !strings.Contains(strings.ToLower(txn.UserEmail), strings.ToLower(q.UserEmail)) {
			continue
		}
		if q.PolicyName != "" && !strings.Contains(strings.ToLower(txn.PolicyName), strings.ToLower(q.PolicyName)) {
			continue
		}
		if q.HasDateRange() && (txn.Date.Before(q.StartDate) || txn.Date.After(q.EndDate)) {
			continue
		}
		matched = append(matched, txn)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Date.After(matched[j].Date) })

	total := int64(len(matched))
	start := int(p.Skip())
	if start > len(matched) {
		start = len(matched)
	}
	end := start + p.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (f *fakeTransactionRepo) TotalPaidAmount(ctx context.Context) (int64, error) {
	var sum int64
	for _, txn := range f.txns {
		if txn.Status == models.TransactionPaid {
			sum += txn.Amount
		}
	}
	return sum, nil
}

func (f *fakeTransactionRepo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	for _, txn := range f.txns {
		if !txn.Date.Before(since) {
			n++
		}
	}
	return n, nil
}

func (f *fakeTransactionRepo) CountByStatusSince(ctx context.Context, status string, since time.Time) (int64, error) {
	var n int64
	for _, txn := range f.txns {
		if txn.Status == status && !txn.Date.Before(since) {
			n++
		}
	}
	return n, nil
}

func seedTransactions(paid, failed int, amount int64) *fakeTransactionRepo {
	repo := &fakeTransactionRepo{}
	now := time.Now()
	for i := 0; i < paid; i++ {
		repo.txns = append(repo.txns, &models.Transaction{
			UserEmail: "customer@example.com",
			Amount:    amount,
			Status:    models.TransactionPaid,
			Date:      now.Add(-time.Duration(i) * time.Hour),
		})
	}
	for i := 0; i < failed; i++ {
		repo.txns = append(repo.txns, &models.Transaction{
			UserEmail: "customer@example.com",
			Amount:    amount,
			Status:    models.TransactionFailed,
			Date:      now.Add(-time.Duration(paid+i) * time.Hour),
		})
	}
	return repo
}

func TestSummary(t *testing.T) {
	svc := NewTransactionService(seedTransactions(3, 2, 5000))

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() error: %v", err)
	}
	if summary.TotalIncome != 150.00 {
		t.Errorf("TotalIncome = %v, want 150.00", summary.TotalIncome)
	}
	if summary.SuccessRate != 60.00 {
		t.Errorf("SuccessRate = %v, want 60.00", summary.SuccessRate)
	}
	if summary.FailRate != 40.00 {
		t.Errorf("FailRate = %v, want 40.00", summary.FailRate)
	}
}

func TestSummaryEmptyCollection(t *testing.T) {
	svc := NewTransactionService(&fakeTransactionRepo{})

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() error: %v", err)
	}
	// the rate denominator floors at 1, so an empty window yields zeros
	if summary.TotalIncome != 0 || summary.SuccessRate != 0 || summary.FailRate != 0 {
		t.Errorf("expected zero summary, got %+v", summary)
	}
}

func TestSummaryIgnoresStaleTransactions(t *testing.T) {
	repo := seedTransactions(3, 2, 5000)
	// paid long before the 30-day window: counts toward income, not rates
	repo.txns = append(repo.txns, &models.Transaction{
		Amount: 10000,
		Status: models.TransactionPaid,
		Date:   time.Now().AddDate(0, 0, -60),
	})
	svc := NewTransactionService(repo)

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() error: %v", err)
	}
	if summary.TotalIncome != 250.00 {
		t.Errorf("TotalIncome = %v, want 250.00", summary.TotalIncome)
	}
	if summary.SuccessRate != 60.00 {
		t.Errorf("SuccessRate = %v, want 60.00", summary.SuccessRate)
	}
}

func TestGetTransactionsPaging(t *testing.T) {
	repo := seedTransactions(12, 0, 1000)
	svc := NewTransactionService(repo)

	p := query.Params{Page: 2, Limit: 5}
	txns, totalPages, summary, err := svc.GetTransactions(context.Background(), models.TransactionQuery{}, p)
	if err != nil {
		t.Fatalf("GetTransactions() error: %v", err)
	}
	if len(txns) != 5 {
		t.Errorf("len(txns) = %d, want 5", len(txns))
	}
	if totalPages != 3 {
		t.Errorf("totalPages = %d, want 3", totalPages)
	}
	if summary == nil {
		t.Fatal("expected summary")
	}

	// pages stay sorted by date descending
	for i := 1; i < len(txns); i++ {
		if txns[i].Date.After(txns[i-1].Date) {
			t.Fatalf("page not sorted by date descending at index %d", i)
		}
	}

	// a page past the end is empty, not an error
	far, totalPages, _, err := svc.GetTransactions(context.Background(), models.TransactionQuery{}, query.Params{Page: 99, Limit: 5})
	if err != nil {
		t.Fatalf("GetTransactions() error: %v", err)
	}
	if len(far) != 0 || totalPages != 3 {
		t.Errorf("far page: len=%d totalPages=%d, want 0 and 3", len(far), totalPages)
	}
}

func TestGetTransactionsSummaryIgnoresFilters(t *testing.T) {
	repo := seedTransactions(3, 2, 5000)
	svc := NewTransactionService(repo)

	q := models.TransactionQuery{UserEmail: "no-such-user"}
	txns, totalPages, summary, err := svc.GetTransactions(context.Background(), q, query.Params{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("GetTransactions() error: %v", err)
	}
	if len(txns) != 0 || totalPages != 0 {
		t.Errorf("expected empty page, got len=%d totalPages=%d", len(txns), totalPages)
	}
	// the summary is a whole-collection aggregate
	if summary.TotalIncome != 150.00 {
		t.Errorf("TotalIncome = %v, want 150.00", summary.TotalIncome)
	}
}

func TestRecordRejectsUnknownStatus(t *testing.T) {
	repo := &fakeTransactionRepo{}
	svc := NewTransactionService(repo)

	err := svc.Record(context.Background(), &models.Transaction{Status: "Success"})
	if err != ErrInvalidStatus {
		t.Fatalf("Record() error = %v, want ErrInvalidStatus", err)
	}
	if len(repo.txns) != 0 {
		t.Fatal("rejected transaction was stored")
	}

	if err := svc.Record(context.Background(), &models.Transaction{Status: models.TransactionPaid}); err != nil {
		t.Fatalf("Record() error: %v", err)
	}
}
