package mocks

import (
	"github.com/greenbasket/checkout/internal/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v82"
)

type MockPaymentProvider struct {
	mock.Mock
	domain.PaymentProvider
}

func (m *MockPaymentProvider) CreateCheckoutSession(
	items []domain.CartItem,
	totals domain.CheckoutTotals,
	mode domain.CheckoutMode,
	origin string) (*stripe.CheckoutSession, error) {

	args := m.Called(items, totals, mode, origin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}

func (m *MockPaymentProvider) RetrieveCheckoutSession(sessionID string) (*stripe.CheckoutSession, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}
