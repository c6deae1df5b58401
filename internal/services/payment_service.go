package services

import (
	"context"
	"errors"
)

// ErrInvalidAmount rejects non-positive payment amounts before they reach
// the processor.
var ErrInvalidAmount = errors.New("amount must be positive")

// paymentService delegates card payments to the external processor
type paymentService struct {
	gateway PaymentGateway
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(gateway PaymentGateway) PaymentService {
	return &paymentService{
		gateway: gateway,
	}
}

// CreatePaymentIntent asks the processor for a payment intent and returns
// its client secret. Amount is in minor currency units.
func (s *paymentService) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	if amount <= 0 {
		return "", ErrInvalidAmount
	}
	return s.gateway.CreatePaymentIntent(amount, currency)
}
