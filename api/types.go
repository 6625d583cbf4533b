// Package api holds the JSON request and response types exposed by the
// storefront checkout API.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the error envelope used by the cart endpoints and the
// framework-level failure paths (not found, panic recovery).
type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

// CheckoutErrorResponse is the flat error shape the storefront client
// expects from the checkout session endpoints.
type CheckoutErrorResponse struct {
	Error string `json:"error"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

// CartItem is one purchasable line in the cart. A line is identified by
// id plus size; the remaining fields are descriptive.
type CartItem struct {
	Id          string  `json:"id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Subtitle    string  `json:"subtitle"`
	Color       string  `json:"color"`
	Size        string  `json:"size"`
	Image       string  `json:"image"`
	Price       float64 `json:"price" validate:"gte=0"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	ArrivalDate string  `json:"arrivalDate"`
}

type CartResponse struct {
	Items     []CartItem      `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	ItemCount int             `json:"itemCount"`
}

type UpdateCartItemRequest struct {
	Id       string `json:"id" validate:"required"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

type RemoveCartItemRequest struct {
	Id   string `json:"id" validate:"required"`
	Size string `json:"size"`
}

// CheckoutItem is a line item as submitted to the checkout session
// endpoint, with the totals already computed by the caller.
type CheckoutItem struct {
	Name     string  `json:"name"`
	Subtitle string  `json:"subtitle"`
	Color    string  `json:"color"`
	Size     string  `json:"size"`
	Image    string  `json:"image"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type CreateCheckoutSessionRequest struct {
	Items    []CheckoutItem `json:"items"`
	Subtotal float64        `json:"subtotal"`
	Tax      float64        `json:"tax"`
	Total    float64        `json:"total"`
	UiMode   string         `json:"uiMode"`
}

type HostedCheckoutSessionResponse struct {
	SessionId string `json:"sessionId"`
	Url       string `json:"url"`
}

type EmbeddedCheckoutSessionResponse struct {
	ClientSecret string `json:"clientSecret"`
	SessionId    string `json:"sessionId"`
}

type SessionStatusRequest struct {
	SessionId string `json:"session_id"`
}

// SessionStatusResponse reports the provider's view of a checkout session.
// The payment intent fields are null when no intent is attached yet.
type SessionStatusResponse struct {
	Status              string  `json:"status"`
	PaymentStatus       string  `json:"payment_status"`
	PaymentIntentId     *string `json:"payment_intent_id"`
	PaymentIntentStatus *string `json:"payment_intent_status"`
}
