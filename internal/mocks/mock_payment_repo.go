package mocks

import (
	"context"

	"github.com/greenbasket/checkout/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPaymentRepo struct {
	mock.Mock
	domain.PaymentRepository
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepo) UpdateStatus(ctx context.Context, checkoutSessionID string, status domain.PaymentStatus) error {
	args := m.Called(ctx, checkoutSessionID, status)
	return args.Error(0)
}
