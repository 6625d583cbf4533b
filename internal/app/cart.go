package app

import (
	"fmt"
	"net/http"

	"github.com/greenbasket/checkout/api"
	"github.com/greenbasket/checkout/internal/cart"
	"github.com/greenbasket/checkout/internal/domain"
)

// The cart is scoped to the browser session: one durable key per session
// token, rewritten in full after every mutation.
func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

// sessionCart builds the hydrated cart store for the current session.
// Hydration never fails visibly; a missing or unreadable snapshot yields an
// empty cart.
func (app *Application) sessionCart(r *http.Request) *cart.Store {
	key := cartKey(app.sessionManager.Token(r.Context()))

	store := cart.NewStore(key, app.cartStorage, app.contextGetLogger(r))
	store.Load(r.Context())

	return store
}

func (app *Application) GetCartHandler(w http.ResponseWriter, r *http.Request) {
	store := app.sessionCart(r)

	err := app.writeJSON(w, http.StatusOK, toApiCartResponse(store), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) AddCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CartItem

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	store := app.sessionCart(r)
	store.AddItem(r.Context(), toDomainCartItem(input))

	err = app.writeJSON(w, http.StatusOK, toApiCartResponse(store), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var input api.UpdateCartItemRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	store := app.sessionCart(r)
	store.UpdateQuantity(r.Context(), input.Id, input.Size, input.Quantity)

	err = app.writeJSON(w, http.StatusOK, toApiCartResponse(store), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) RemoveCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var input api.RemoveCartItemRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	store := app.sessionCart(r)
	store.RemoveItem(r.Context(), input.Id, input.Size)

	err = app.writeJSON(w, http.StatusOK, toApiCartResponse(store), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ClearCartHandler(w http.ResponseWriter, r *http.Request) {
	store := app.sessionCart(r)
	store.Clear(r.Context())

	w.WriteHeader(http.StatusNoContent)
}

func toApiCartResponse(store *cart.Store) api.CartResponse {
	items := store.Items()

	apiItems := make([]api.CartItem, len(items))
	for i, item := range items {
		apiItems[i] = api.CartItem{
			Id:          item.ID,
			Name:        item.Name,
			Subtitle:    item.Subtitle,
			Color:       item.Color,
			Size:        item.Size,
			Image:       item.Image,
			Price:       item.Price,
			Quantity:    item.Quantity,
			ArrivalDate: item.ArrivalDate,
		}
	}

	return api.CartResponse{
		Items:     apiItems,
		Subtotal:  store.Subtotal(),
		ItemCount: store.ItemCount(),
	}
}

func toDomainCartItem(item api.CartItem) domain.CartItem {
	return domain.CartItem{
		ID:          item.Id,
		Name:        item.Name,
		Subtitle:    item.Subtitle,
		Color:       item.Color,
		Size:        item.Size,
		Image:       item.Image,
		Price:       item.Price,
		Quantity:    item.Quantity,
		ArrivalDate: item.ArrivalDate,
	}
}
