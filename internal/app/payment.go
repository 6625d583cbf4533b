package app

import (
	"net/http"

	"github.com/greenbasket/checkout/api"
	"github.com/greenbasket/checkout/internal/domain"
	"github.com/stripe/stripe-go/v82"
)

func (app *Application) SessionStatusHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.SessionStatusRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.checkoutErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if input.SessionId == "" {
		app.checkoutErrorResponse(w, r, http.StatusBadRequest, errSessionIdRequired)
		return
	}

	if app.config.Stripe.SecretKey == "" {
		logger.Error("session status requested but no payment provider credentials are configured")
		app.checkoutErrorResponse(w, r, http.StatusInternalServerError, errServerConfig)
		return
	}

	checkoutSession, err := app.paymentProvider.RetrieveCheckoutSession(input.SessionId)
	if err != nil {
		logger.Error("failed to retrieve checkout session", "session_id", input.SessionId, "error", err)
		app.checkoutErrorResponse(w, r, http.StatusInternalServerError, providerErrorMessage(err, errRetrieveStatus))
		return
	}

	resp := api.SessionStatusResponse{
		Status:        string(checkoutSession.Status),
		PaymentStatus: string(checkoutSession.PaymentStatus),
	}

	if checkoutSession.PaymentIntent != nil {
		intentStatus := string(checkoutSession.PaymentIntent.Status)
		resp.PaymentIntentId = &checkoutSession.PaymentIntent.ID
		resp.PaymentIntentStatus = &intentStatus
	}

	// Ledger sync is best-effort; the client still gets the provider's answer.
	if status, ok := paymentStatusFromProvider(checkoutSession); ok {
		err = app.paymentRepo.UpdateStatus(r.Context(), checkoutSession.ID, status)
		if err != nil {
			logger.Error("failed to update payment status", "session_id", checkoutSession.ID, "error", err)
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func paymentStatusFromProvider(checkoutSession *stripe.CheckoutSession) (domain.PaymentStatus, bool) {
	if checkoutSession.Status == stripe.CheckoutSessionStatusExpired {
		return domain.PaymentStatusCanceled, true
	}

	switch checkoutSession.PaymentStatus {
	case stripe.CheckoutSessionPaymentStatusPaid, stripe.CheckoutSessionPaymentStatusNoPaymentRequired:
		return domain.PaymentStatusCompleted, true
	default:
		return "", false
	}
}
