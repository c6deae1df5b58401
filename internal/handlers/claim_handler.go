package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thrivesecure/thrivesecure-backend/internal/models"
	"github.com/thrivesecure/thrivesecure-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ClaimHandler handles claim-related HTTP requests
type ClaimHandler struct {
	claimService services.ClaimService
}

// NewClaimHandler creates a new ClaimHandler
func NewClaimHandler(claimService services.ClaimService) *ClaimHandler {
	return &ClaimHandler{
		claimService: claimService,
	}
}

// FileClaim handles POST /claims
func (h *ClaimHandler) FileClaim(c *gin.Context) {
	var claim models.Claim
	if err := c.ShouldBindJSON(&claim); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if claim.UserEmail == "" || claim.Reason == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User email and reason are required"})
		return
	}

	if err := h.claimService.FileClaim(c.Request.Context(), &claim); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to file claim: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, claim)
}

// GetClaims handles GET /claims
func (h *ClaimHandler) GetClaims(c *gin.Context) {
	email := c.Query("email")

	claims, err := h.claimService.GetClaims(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get claims: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, claims)
}

// UpdateStatus handles PATCH /claims/:id/status
func (h *ClaimHandler) UpdateStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}

	var request struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := h.claimService.UpdateStatus(c.Request.Context(), id, request.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status provided."})
		case errors.Is(err, mongo.ErrNoDocuments):
			c.JSON(http.StatusNotFound, gin.H{"message": "Claim not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update claim: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Claim status updated."})
}
