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
)

// userService handles user-related business logic
type userService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

// SignIn creates the user on first sign-in and bumps lastLogin on every
// subsequent one
func (s *userService) SignIn(ctx context.Context, user *models.User) (bool, error) {
	now := time.Now()

	_, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err == nil {
		return false, s.userRepo.UpdateLastLogin(ctx, user.Email, now)
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return false, err
	}

	if user.Role == "" {
		user.Role = models.RoleCustomer
	}
	user.CreatedAt = now
	user.LastLogin = now
	if err := s.userRepo.Create(ctx, user); err != nil {
		return false, err
	}
	return true, nil
}

// GetUserByEmail retrieves a user by email
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.userRepo.FindByEmail(ctx, email)
}

// GetUsers returns one page of users and the total page count
func (s *userService) GetUsers(ctx context.Context, role string, p query.Params) ([]*models.User, int, error) {
	users, total, err := s.userRepo.FindPage(ctx, role, p)
	if err != nil {
		return nil, 0, err
	}
	return users, query.TotalPages(total, p.Limit), nil
}

// UpdateRole changes a user's role after validating it
func (s *userService) UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (*models.User, error) {
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}
	return s.userRepo.UpdateRole(ctx, id, role)
}

// DeleteUser deletes a user by ID
func (s *userService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	return s.userRepo.Delete(ctx, id)
}
