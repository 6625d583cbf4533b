package payment

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/greenbasket/checkout/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

type StripePaymentProvider struct {
}

func NewStripePaymentProvider() *StripePaymentProvider {
	return &StripePaymentProvider{}
}

func (s *StripePaymentProvider) CreateCheckoutSession(
	items []domain.CartItem,
	totals domain.CheckoutTotals,
	mode domain.CheckoutMode,
	origin string) (*stripe.CheckoutSession, error) {

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(items))

	for _, item := range items {
		// Stripe wants unit amounts in minor currency units.
		unitAmount := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

		lineItem := &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(string(stripe.CurrencyUSD)),
				UnitAmount: stripe.Int64(unitAmount),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String(item.Name),
					Description: stripe.String(fmt.Sprintf("%s - %s - Size: %s", item.Subtitle, item.Color, item.Size)),
					Images:      stripe.StringSlice([]string{item.Image}),
				},
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		}

		lineItems = append(lineItems, lineItem)
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		Metadata: map[string]string{
			"subtotal": totals.Subtotal.StringFixed(2),
			"tax":      totals.Tax.StringFixed(2),
			"total":    totals.Total.StringFixed(2),
		},
	}
	params.IdempotencyKey = stripe.String(uuid.NewString())

	if mode == domain.CheckoutModeHosted {
		params.SuccessURL = stripe.String(origin + "/checkout/success?session_id={CHECKOUT_SESSION_ID}")
		params.CancelURL = stripe.String(origin + "/checkout?canceled=true")
	} else {
		params.UIMode = stripe.String(string(stripe.CheckoutSessionUIModeCustom))
		params.ReturnURL = stripe.String(origin + "/checkout/success?session_id={CHECKOUT_SESSION_ID}")
	}

	return session.New(params)
}

func (s *StripePaymentProvider) RetrieveCheckoutSession(sessionID string) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.AddExpand("payment_intent")

	return session.Get(sessionID, params)
}
