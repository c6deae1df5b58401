package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thrivesecure/thrivesecure-backend/internal/config"
	"github.com/thrivesecure/thrivesecure-backend/internal/models"
	"github.com/thrivesecure/thrivesecure-backend/internal/query"
	"github.com/thrivesecure/thrivesecure-backend/internal/services"
	"github.com/thrivesecure/thrivesecure-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// defaultUserLimit is the page size when the caller does not supply one.
const defaultUserLimit = 5

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService services.UserService
	cfg         *config.Config
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService services.UserService, cfg *config.Config) *UserHandler {
	return &UserHandler{
		userService: userService,
		cfg:         cfg,
	}
}

// SignIn handles POST /users
func (h *UserHandler) SignIn(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if user.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}

	inserted, err := h.userService.SignIn(c.Request.Context(), &user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to sign in: " + err.Error()})
		return
	}

	token, err := utils.GenerateJWT(user.Email, user.Role, h.cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to issue token: " + err.Error()})
		return
	}

	message := "User already exists"
	if inserted {
		message = "User created"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "inserted": inserted, "token": token})
}

// GetUsers handles GET /users
func (h *UserHandler) GetUsers(c *gin.Context) {
	p := query.ParseParams(c.Query("page"), c.Query("limit"), defaultUserLimit)
	role := c.Query("role")

	users, totalPages, err := h.userService.GetUsers(c.Request.Context(), role, p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get users: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users, "totalPages": totalPages})
}

// GetUserByEmail handles GET /users/:email
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	email := c.Param("email")

	user, err := h.userService.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get user: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateRole handles PATCH /users/:id/role
func (h *UserHandler) UpdateRole(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}

	var request struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := h.userService.UpdateRole(c.Request.Context(), id, request.Role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role provided."})
		case errors.Is(err, mongo.ErrNoDocuments):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update role: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete user: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully."})
}
