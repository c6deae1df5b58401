package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/thrivesecure/thrivesecure-backend/internal/models"
	"github.com/thrivesecure/thrivesecure-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeNewsletterService struct {
	subs []*models.NewsletterSubscription
}

func (f *fakeNewsletterService) Subscribe(ctx context.Context, sub *models.NewsletterSubscription) error {
	for _, s := range f.subs {
		if s.Email == sub.Email {
			return services.ErrAlreadySubscribed
		}
	}
	sub.ID = primitive.NewObjectID()
	f.subs = append(f.subs, sub)
	return nil
}

func newNewsletterRouter(svc *fakeNewsletterService) *gin.Engine {
	h := NewNewsletterHandler(svc)
	r := gin.New()
	r.POST("/newsletter-subscriptions", h.Subscribe)
	return r
}

func TestSubscribe(t *testing.T) {
	router := newNewsletterRouter(&fakeNewsletterService{})

	req := httptest.NewRequest("POST", "/newsletter-subscriptions",
		strings.NewReader(`{"name":"Ana","email":"ana@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Success    bool   `json:"success"`
		InsertedID string `json:"insertedId"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.InsertedID == "" {
		t.Errorf("body = %+v, want success with an inserted id", body)
	}
}

func TestSubscribeRequiresNameAndEmail(t *testing.T) {
	router := newNewsletterRouter(&fakeNewsletterService{})

	req := httptest.NewRequest("POST", "/newsletter-subscriptions",
		strings.NewReader(`{"email":"ana@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSubscribeDuplicate(t *testing.T) {
	svc := &fakeNewsletterService{}
	router := newNewsletterRouter(svc)

	payload := `{"name":"Ana","email":"ana@example.com"}`
	for i, wantCode := range []int{http.StatusOK, http.StatusBadRequest} {
		req := httptest.NewRequest("POST", "/newsletter-subscriptions", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != wantCode {
			t.Fatalf("attempt %d: status = %d, want %d", i+1, rec.Code, wantCode)
		}
	}
	if len(svc.subs) != 1 {
		t.Errorf("expected 1 subscription, got %d", len(svc.subs))
	}
}
