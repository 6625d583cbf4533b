package app

import (
	"errors"
	"net/http"

	"github.com/greenbasket/checkout/api"
	"github.com/greenbasket/checkout/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
)

const (
	errNoItems           = "No items provided"
	errServerConfig      = "Server configuration error"
	errCreateSession     = "Failed to create checkout session"
	errRetrieveStatus    = "Failed to retrieve session status"
	errSessionIdRequired = "session_id is required"
)

func (app *Application) CreateCheckoutSessionHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateCheckoutSessionRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.checkoutErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if len(input.Items) == 0 {
		app.checkoutErrorResponse(w, r, http.StatusBadRequest, errNoItems)
		return
	}

	if app.config.Stripe.SecretKey == "" {
		logger.Error("checkout session requested but no payment provider credentials are configured")
		app.checkoutErrorResponse(w, r, http.StatusInternalServerError, errServerConfig)
		return
	}

	items := make([]domain.CartItem, len(input.Items))
	for i, item := range input.Items {
		items[i] = domain.CartItem{
			Name:     item.Name,
			Subtitle: item.Subtitle,
			Color:    item.Color,
			Size:     item.Size,
			Image:    item.Image,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}

	totals := domain.CheckoutTotals{
		Subtotal: decimal.NewFromFloat(input.Subtotal),
		Tax:      decimal.NewFromFloat(input.Tax),
		Total:    decimal.NewFromFloat(input.Total),
	}

	mode := domain.CheckoutModeEmbedded
	if input.UiMode == string(domain.CheckoutModeHosted) {
		mode = domain.CheckoutModeHosted
	}

	checkoutSession, err := app.paymentProvider.CreateCheckoutSession(items, totals, mode, app.requestOrigin(r))
	if err != nil {
		logger.Error("failed to create checkout session", "error", err)
		app.checkoutErrorResponse(w, r, http.StatusInternalServerError, providerErrorMessage(err, errCreateSession))
		return
	}

	payment := &domain.Payment{
		CheckoutSessionID: checkoutSession.ID,
		Amount:            totals.Total,
		Currency:          "USD",
		Status:            domain.PaymentStatusPending,
	}

	err = app.paymentRepo.Create(r.Context(), payment)
	if err != nil {
		logger.Error("failed to record payment for checkout session", "session_id", checkoutSession.ID, "error", err)
		app.checkoutErrorResponse(w, r, http.StatusInternalServerError, errCreateSession)
		return
	}

	var resp any
	if mode == domain.CheckoutModeHosted {
		resp = api.HostedCheckoutSessionResponse{
			SessionId: checkoutSession.ID,
			Url:       checkoutSession.URL,
		}
	} else {
		resp = api.EmbeddedCheckoutSessionResponse{
			ClientSecret: checkoutSession.ClientSecret,
			SessionId:    checkoutSession.ID,
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// providerErrorMessage extracts a human-readable message from a provider
// failure, preferring Stripe's own message when one is attached.
func providerErrorMessage(err error, fallback string) string {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return stripeErr.Msg
	}

	if msg := err.Error(); msg != "" {
		return msg
	}

	return fallback
}
