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

// defaultApplicationLimit is the page size when the caller does not supply one.
const defaultApplicationLimit = 5

// ApplicationHandler handles application-related HTTP requests
type ApplicationHandler struct {
	appService services.ApplicationService
}

// NewApplicationHandler creates a new ApplicationHandler
func NewApplicationHandler(appService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		appService: appService,
	}
}

// Submit handles POST /applications
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var app models.Application
	if err := c.ShouldBindJSON(&app); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if app.FullName == "" || app.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Full name and email are required"})
		return
	}

	if err := h.appService.Submit(c.Request.Context(), &app); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit application: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, app)
}

// GetApplications handles GET /applications
func (h *ApplicationHandler) GetApplications(c *gin.Context) {
	p := query.ParseParams(c.Query("page"), c.Query("limit"), defaultApplicationLimit)
	assignedAgent := c.Query("assignedAgent")

	apps, totalPages, err := h.appService.GetApplications(c.Request.Context(), assignedAgent, p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get applications: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": apps, "totalPages": totalPages})
}

// GetApplication handles GET /applications/:id
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}

	app, err := h.appService.GetApplication(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get application: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, app)
}

// GetApplicationsByApplicant handles GET /applications/user/:email
func (h *ApplicationHandler) GetApplicationsByApplicant(c *gin.Context) {
	email := c.Param("email")

	apps, err := h.appService.GetApplicationsByApplicant(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get applications: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, apps)
}

// AssignAgent handles PATCH /admin/applications/:id/assign
func (h *ApplicationHandler) AssignAgent(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}

	var request struct {
		AgentEmail string `json:"agentEmail"`
	}
	if err := c.ShouldBindJSON(&request); err != nil || request.AgentEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Agent email is required"})
		return
	}

	if err := h.appService.AssignAgent(c.Request.Context(), id, request.AgentEmail); err != nil {
		h.writeUpdateError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Agent assigned successfully."})
}

// Reject handles PATCH /admin/applications/:id/reject
func (h *ApplicationHandler) Reject(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}

	if err := h.appService.Reject(c.Request.Context(), id); err != nil {
		h.writeUpdateError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application rejected."})
}

// UpdateAgentStatus handles PATCH /applications/:id/agent-status
func (h *ApplicationHandler) UpdateAgentStatus(c *gin.Context) {
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

	if err := h.appService.UpdateAgentStatus(c.Request.Context(), id, request.Status); err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status provided."})
			return
		}
		h.writeUpdateError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Agent status updated."})
}

// UpdatePaymentStatus handles PATCH /applications/:id/payment-status
func (h *ApplicationHandler) UpdatePaymentStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}

	if err := h.appService.MarkPaymentPaid(c.Request.Context(), id); err != nil {
		h.writeUpdateError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment recorded."})
}

func (h *ApplicationHandler) writeUpdateError(c *gin.Context, err error) {
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update application: " + err.Error()})
}
