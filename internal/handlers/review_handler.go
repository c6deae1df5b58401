package handlers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thrivesecure/thrivesecure-backend/internal/models"
	"github.com/thrivesecure/thrivesecure-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewHandler handles review-related HTTP requests
type ReviewHandler struct {
	reviewService services.ReviewService
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// AddReview handles POST /reviews. Ratings arrive from the client as
// arbitrary JSON numbers and are coerced to an integer.
func (h *ReviewHandler) AddReview(c *gin.Context) {
	var request struct {
		UserEmail  string  `json:"userEmail" binding:"required"`
		UserName   string  `json:"userName"`
		UserPhoto  string  `json:"userPhoto"`
		PolicyID   string  `json:"policyId"`
		PolicyName string  `json:"policyName"`
		Rating     float64 `json:"rating"`
		Feedback   string  `json:"feedback"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	review := models.Review{
		UserEmail:  request.UserEmail,
		UserName:   request.UserName,
		UserPhoto:  request.UserPhoto,
		PolicyName: request.PolicyName,
		Rating:     int(math.Round(request.Rating)),
		Feedback:   request.Feedback,
	}
	if request.PolicyID != "" {
		id, err := primitive.ObjectIDFromHex(request.PolicyID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid policy ID format"})
			return
		}
		review.PolicyID = id
	}

	if err := h.reviewService.AddReview(c.Request.Context(), &review); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add review: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, review)
}

// GetLatestReviews handles GET /reviews/latest
func (h *ReviewHandler) GetLatestReviews(c *gin.Context) {
	reviews, err := h.reviewService.GetLatestReviews(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get reviews: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, reviews)
}
