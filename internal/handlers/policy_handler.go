package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thrivesecure/thrivesecure-backend/internal/models"
	"github.com/thrivesecure/thrivesecure-backend/internal/query"
	"github.com/thrivesecure/thrivesecure-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// defaultPolicyLimit matches the marketplace grid of nine cards per page.
const defaultPolicyLimit = 9

// PolicyHandler handles policy-related HTTP requests
type PolicyHandler struct {
	policyService services.PolicyService
}

// NewPolicyHandler creates a new PolicyHandler
func NewPolicyHandler(policyService services.PolicyService) *PolicyHandler {
	return &PolicyHandler{
		policyService: policyService,
	}
}

// CreatePolicy handles POST /policies
func (h *PolicyHandler) CreatePolicy(c *gin.Context) {
	var policy models.Policy
	if err := c.ShouldBindJSON(&policy); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if policy.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title is required"})
		return
	}

	if err := h.policyService.CreatePolicy(c.Request.Context(), &policy); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create policy: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, policy)
}

// GetPolicies handles GET /policies
func (h *PolicyHandler) GetPolicies(c *gin.Context) {
	p := query.ParseParams(c.Query("page"), c.Query("limit"), defaultPolicyLimit)
	category := c.Query("category")
	search := c.Query("search")

	policies, totalPages, err := h.policyService.GetPolicies(c.Request.Context(), category, search, p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get policies: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"policies": policies, "totalPages": totalPages})
}

// GetPolicy handles GET /policies/:id
func (h *PolicyHandler) GetPolicy(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}

	policy, err := h.policyService.GetPolicy(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Policy not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get policy: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, policy)
}

// GetTopPolicies handles GET /policies/top
func (h *PolicyHandler) GetTopPolicies(c *gin.Context) {
	policies, err := h.policyService.GetTopPolicies(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get policies: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, policies)
}

// UpdatePolicy handles PUT /policies/:id
func (h *PolicyHandler) UpdatePolicy(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}

	var policy models.Policy
	if err := c.ShouldBindJSON(&policy); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	policy.ID = id

	if err := h.policyService.UpdatePolicy(c.Request.Context(), &policy); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Policy not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update policy: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, policy)
}

// DeletePolicy handles DELETE /policies/:id
func (h *PolicyHandler) DeletePolicy(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}

	if err := h.policyService.DeletePolicy(c.Request.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Policy not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete policy: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Policy deleted successfully."})
}
