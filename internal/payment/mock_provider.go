package payment

import (
	"github.com/google/uuid"
	"github.com/greenbasket/checkout/internal/domain"
	"github.com/stripe/stripe-go/v82"
)

// MockPaymentProvider fabricates checkout sessions without contacting
// Stripe. Used by the integration suite.
type MockPaymentProvider struct {
	Err error
}

func NewMockPaymentProvider() *MockPaymentProvider {
	return &MockPaymentProvider{}
}

func (m *MockPaymentProvider) CreateCheckoutSession(
	items []domain.CartItem,
	totals domain.CheckoutTotals,
	mode domain.CheckoutMode,
	origin string) (*stripe.CheckoutSession, error) {

	if m.Err != nil {
		return nil, m.Err
	}

	checkoutSession := &stripe.CheckoutSession{
		ID:            "cs_test_" + uuid.NewString(),
		Status:        stripe.CheckoutSessionStatusOpen,
		PaymentStatus: stripe.CheckoutSessionPaymentStatusUnpaid,
	}

	if mode == domain.CheckoutModeHosted {
		checkoutSession.URL = origin + "/mock-checkout/" + checkoutSession.ID
	} else {
		checkoutSession.ClientSecret = checkoutSession.ID + "_secret"
	}

	return checkoutSession, nil
}

func (m *MockPaymentProvider) RetrieveCheckoutSession(sessionID string) (*stripe.CheckoutSession, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	return &stripe.CheckoutSession{
		ID:            sessionID,
		Status:        stripe.CheckoutSessionStatusComplete,
		PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
		PaymentIntent: &stripe.PaymentIntent{
			ID:     "pi_" + sessionID,
			Status: stripe.PaymentIntentStatusSucceeded,
		},
	}, nil
}
