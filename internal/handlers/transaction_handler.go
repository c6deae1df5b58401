package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thrivesecure/thrivesecure-backend/internal/models"
	"github.com/thrivesecure/thrivesecure-backend/internal/query"
	"github.com/thrivesecure/thrivesecure-backend/internal/services"
)

// defaultTransactionLimit is the page size when the caller does not supply one.
const defaultTransactionLimit = 10

// dateLayout is the wire format for startDate/endDate query parameters.
const dateLayout = "2006-01-02"

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	txnService services.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(txnService services.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		txnService: txnService,
	}
}

// Record handles POST /transactions
func (h *TransactionHandler) Record(c *gin.Context) {
	var txn models.Transaction
	if err := c.ShouldBindJSON(&txn); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if txn.UserEmail == "" || txn.PaymentIntentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User email and payment intent are required"})
		return
	}

	if err := h.txnService.Record(c.Request.Context(), &txn); err != nil {
		if err == services.ErrInvalidStatus {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Status must be paid or failed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to record transaction: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, txn)
}

// GetTransactions handles GET /transactions
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	p := query.ParseParams(c.Query("page"), c.Query("limit"), defaultTransactionLimit)

	q := models.TransactionQuery{
		UserEmail:  c.Query("user"),
		PolicyName: c.Query("policy"),
	}
	// The range applies only when both dates parse; a lone or malformed
	// bound is ignored rather than rejected.
	start, startErr := time.Parse(dateLayout, c.Query("startDate"))
	end, endErr := time.Parse(dateLayout, c.Query("endDate"))
	if startErr == nil && endErr == nil {
		q.StartDate = start
		q.EndDate = end.Add(24*time.Hour - time.Nanosecond)
	}

	txns, totalPages, summary, err := h.txnService.GetTransactions(c.Request.Context(), q, p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get transactions: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transactions": txns,
		"totalPages":   totalPages,
		"summary":      summary,
	})
}
