package services

import (
	"context"
	"testing"
	"time"

	"github.com/thrivesecure/thrivesecure-backend/internal/models"
	"github.com/thrivesecure/thrivesecure-backend/internal/query"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeUserRepo is an in-memory stand-in for the Mongo repository.
type fakeUserRepo struct {
	users []*models.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) UpdateLastLogin(ctx context.Context, email string, at time.Time) error {
	for _, u := range f.users {
		if u.Email == email {
			u.LastLogin = at
			return nil
		}
	}
	return nil
}

func (f *fakeUserRepo) FindPage(ctx context.Context, role string, p query.Params) ([]*models.User, int64, error) {
	var matched []*models.User
	for _, u := range f.users {
		if role == "" || u.Role == role {
			matched = append(matched, u)
		}
	}
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

func (f *fakeUserRepo) UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			u.Role = role
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func TestSignInInsertsFirstTime(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	user := &models.User{Name: "Ana", Email: "ana@example.com"}
	inserted, err := svc.SignIn(context.Background(), user)
	if err != nil {
		t.Fatalf("SignIn() error: %v", err)
	}
	if !inserted {
		t.Fatal("expected first sign-in to insert")
	}
	if user.Role != models.RoleCustomer {
		t.Errorf("role = %q, want customer", user.Role)
	}
	if user.CreatedAt.IsZero() || user.LastLogin.IsZero() {
		t.Error("timestamps not set on insert")
	}
}

func TestSignInBumpsLastLogin(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewUserService(repo)

	first := &models.User{Email: "ana@example.com"}
	if _, err := svc.SignIn(context.Background(), first); err != nil {
		t.Fatalf("SignIn() error: %v", err)
	}
	previous := repo.users[0].LastLogin

	time.Sleep(time.Millisecond)
	inserted, err := svc.SignIn(context.Background(), &models.User{Email: "ana@example.com"})
	if err != nil {
		t.Fatalf("SignIn() error: %v", err)
	}
	if inserted {
		t.Fatal("expected second sign-in to update, not insert")
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(repo.users))
	}
	if !repo.users[0].LastLogin.After(previous) {
		t.Error("lastLogin not bumped")
	}
}

func TestGetUsersRoleFilter(t *testing.T) {
	repo := &fakeUserRepo{}
	for i := 0; i < 10; i++ {
		role := models.RoleCustomer
		if i < 2 {
			role = models.RoleAgent
		}
		repo.users = append(repo.users, &models.User{
			ID:    primitive.NewObjectID(),
			Role:  role,
			Email: "u@example.com",
		})
	}
	svc := NewUserService(repo)

	agents, totalPages, err := svc.GetUsers(context.Background(), models.RoleAgent, query.Params{Page: 1, Limit: 5})
	if err != nil {
		t.Fatalf("GetUsers() error: %v", err)
	}
	if len(agents) != 2 {
		t.Errorf("len(agents) = %d, want 2", len(agents))
	}
	if totalPages != 1 {
		t.Errorf("totalPages = %d, want 1", totalPages)
	}

	// no filter returns the whole collection count
	all, totalPages, err := svc.GetUsers(context.Background(), "", query.Params{Page: 1, Limit: 5})
	if err != nil {
		t.Fatalf("GetUsers() error: %v", err)
	}
	if len(all) != 5 || totalPages != 2 {
		t.Errorf("unfiltered: len=%d totalPages=%d, want 5 and 2", len(all), totalPages)
	}
}

func TestUpdateRoleValidation(t *testing.T) {
	repo := &fakeUserRepo{}
	user := &models.User{ID: primitive.NewObjectID(), Email: "ana@example.com", Role: models.RoleCustomer}
	repo.users = append(repo.users, user)
	svc := NewUserService(repo)

	if _, err := svc.UpdateRole(context.Background(), user.ID, "superuser"); err != ErrInvalidRole {
		t.Fatalf("UpdateRole() error = %v, want ErrInvalidRole", err)
	}

	updated, err := svc.UpdateRole(context.Background(), user.ID, models.RoleAgent)
	if err != nil {
		t.Fatalf("UpdateRole() error: %v", err)
	}
	if updated.Role != models.RoleAgent {
		t.Errorf("role = %q, want agent", updated.Role)
	}
}
