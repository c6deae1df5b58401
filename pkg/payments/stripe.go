// Package payments wraps the card payment processor. Only payment-intent
// creation happens server-side; capture and confirmation run on the client
// against the returned secret.
package payments

import (
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// Client is a Stripe payment-intent client
type Client struct {
	secretKey string
}

// NewClient creates a new Stripe client
func NewClient(secretKey string) *Client {
	stripe.Key = secretKey
	return &Client{
		secretKey: secretKey,
	}
}

// CreatePaymentIntent creates a card payment intent and returns its client
// secret. Amount is in minor currency units.
func (c *Client) CreatePaymentIntent(amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
