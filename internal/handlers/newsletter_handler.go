package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thrivesecure/thrivesecure-backend/internal/models"
	"github.com/thrivesecure/thrivesecure-backend/internal/services"
)

// NewsletterHandler handles newsletter signup requests
type NewsletterHandler struct {
	newsletterService services.NewsletterService
}

// NewNewsletterHandler creates a new NewsletterHandler
func NewNewsletterHandler(newsletterService services.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterService: newsletterService,
	}
}

// Subscribe handles POST /newsletter-subscriptions
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var sub models.NewsletterSubscription
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if sub.Name == "" || sub.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name and email are required."})
		return
	}

	if err := h.newsletterService.Subscribe(c.Request.Context(), &sub); err != nil {
		if errors.Is(err, services.ErrAlreadySubscribed) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "This email is already subscribed."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to subscribe: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "insertedId": sub.ID})
}
