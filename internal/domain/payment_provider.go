package domain

import (
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
)

// CheckoutMode selects how the provider's checkout UI is presented.
// Hosted redirects the customer to a provider-hosted page; embedded hands
// back a client secret for an in-page flow.
type CheckoutMode string

const (
	CheckoutModeHosted   CheckoutMode = "hosted"
	CheckoutModeEmbedded CheckoutMode = "embedded"
)

// CheckoutTotals carries the caller-computed totals that are attached to a
// checkout session as opaque metadata.
type CheckoutTotals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

type PaymentProvider interface {
	CreateCheckoutSession(items []CartItem, totals CheckoutTotals, mode CheckoutMode, origin string) (*stripe.CheckoutSession, error)
	RetrieveCheckoutSession(sessionID string) (*stripe.CheckoutSession, error)
}
