package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thrivesecure/thrivesecure-backend/internal/services"
)

// PaymentHandler handles payment-intent HTTP requests
type PaymentHandler struct {
	paymentService services.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreatePaymentIntent handles POST /create-payment-intent. Amount is in
// minor currency units, e.g. 5000 = $50.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var request struct {
		Amount   int64  `json:"amount" binding:"required"`
		Currency string `json:"currency" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	clientSecret, err := h.paymentService.CreatePaymentIntent(c.Request.Context(), request.Amount, request.Currency)
	if err != nil {
		if errors.Is(err, services.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Amount must be positive"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create payment intent: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}
