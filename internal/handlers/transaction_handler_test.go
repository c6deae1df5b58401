package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thrivesecure/thrivesecure-backend/internal/models"
	"github.com/thrivesecure/thrivesecure-backend/internal/query"
)

// fakeTransactionService records the query and params the handler builds.
type fakeTransactionService struct {
	lastQuery  models.TransactionQuery
	lastParams query.Params
	recorded   []*models.Transaction
}

func (f *fakeTransactionService) Record(ctx context.Context, txn *models.Transaction) error {
	f.recorded = append(f.recorded, txn)
	return nil
}

func (f *fakeTransactionService) GetTransactions(ctx context.Context, q models.TransactionQuery, p query.Params) ([]*models.Transaction, int, *models.TransactionSummary, error) {
	f.lastQuery = q
	f.lastParams = p
	summary := &models.TransactionSummary{TotalIncome: 150, SuccessRate: 60, FailRate: 40}
	return []*models.Transaction{}, 0, summary, nil
}

func (f *fakeTransactionService) Summary(ctx context.Context) (*models.TransactionSummary, error) {
	return &models.TransactionSummary{}, nil
}

func newTransactionRouter(svc *fakeTransactionService) *gin.Engine {
	h := NewTransactionHandler(svc)
	r := gin.New()
	r.POST("/transactions", h.Record)
	r.GET("/transactions", h.GetTransactions)
	return r
}

func TestGetTransactionsIncludesSummary(t *testing.T) {
	svc := &fakeTransactionService{}
	router := newTransactionRouter(svc)

	req := httptest.NewRequest("GET", "/transactions", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Summary models.TransactionSummary `json:"summary"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Summary.TotalIncome != 150 {
		t.Errorf("summary.totalIncome = %v, want 150", body.Summary.TotalIncome)
	}
	if svc.lastParams.Limit != defaultTransactionLimit {
		t.Errorf("limit = %d, want default %d", svc.lastParams.Limit, defaultTransactionLimit)
	}
}

func TestGetTransactionsDateRange(t *testing.T) {
	svc := &fakeTransactionService{}
	router := newTransactionRouter(svc)

	req := httptest.NewRequest("GET", "/transactions?startDate=2026-01-01&endDate=2026-01-31", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !svc.lastQuery.HasDateRange() {
		t.Fatal("expected a date range on the query")
	}
	wantStart := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if !svc.lastQuery.StartDate.Equal(wantStart) {
		t.Errorf("startDate = %v, want %v", svc.lastQuery.StartDate, wantStart)
	}
	// endDate covers the whole final day
	if svc.lastQuery.EndDate.Day() != 31 || svc.lastQuery.EndDate.Hour() != 23 {
		t.Errorf("endDate = %v, want end of Jan 31", svc.lastQuery.EndDate)
	}
}

func TestGetTransactionsLoneDateIgnored(t *testing.T) {
	svc := &fakeTransactionService{}
	router := newTransactionRouter(svc)

	req := httptest.NewRequest("GET", "/transactions?startDate=2026-01-01", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.lastQuery.HasDateRange() {
		t.Error("a lone start date must not produce a range")
	}
}

func TestGetTransactionsMalformedDateIgnored(t *testing.T) {
	svc := &fakeTransactionService{}
	router := newTransactionRouter(svc)

	req := httptest.NewRequest("GET", "/transactions?startDate=01/01/2026&endDate=2026-01-31", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, malformed dates are ignored", rec.Code)
	}
	if svc.lastQuery.HasDateRange() {
		t.Error("a malformed bound must not produce a range")
	}
}

func TestGetTransactionsSearchPassthrough(t *testing.T) {
	svc := &fakeTransactionService{}
	router := newTransactionRouter(svc)

	req := httptest.NewRequest("GET", "/transactions?user=ana@example.com&policy=health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if svc.lastQuery.UserEmail != "ana@example.com" || svc.lastQuery.PolicyName != "health" {
		t.Errorf("query = %+v, want user and policy passed through", svc.lastQuery)
	}
}

func TestRecordRequiresIntent(t *testing.T) {
	svc := &fakeTransactionService{}
	router := newTransactionRouter(svc)

	req := httptest.NewRequest("POST", "/transactions",
		strings.NewReader(`{"userEmail":"ana@example.com","status":"paid"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(svc.recorded) != 0 {
		t.Error("transaction stored despite missing payment intent")
	}
}
