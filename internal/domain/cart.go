package domain

import (
	"github.com/shopspring/decimal"
)

// CartItem is one purchasable line in a cart. Two items belong to the same
// line iff their ID and Size match; every other field is descriptive and
// carries no identity.
type CartItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Subtitle    string  `json:"subtitle"`
	Color       string  `json:"color"`
	Size        string  `json:"size"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	ArrivalDate string  `json:"arrivalDate"`
}

// SameLine reports whether other refers to the same cart line.
func (c CartItem) SameLine(other CartItem) bool {
	return c.ID == other.ID && c.Size == other.Size
}

// LineTotal is the item's unit price multiplied by its quantity.
func (c CartItem) LineTotal() decimal.Decimal {
	return decimal.NewFromFloat(c.Price).Mul(decimal.NewFromInt(int64(c.Quantity)))
}
