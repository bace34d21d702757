package models

import "github.com/shopspring/decimal"

// CartLine is one product in the cart together with how many units were added.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Total is price times quantity.
func (l CartLine) Total() decimal.Decimal {
	return decimal.NewFromFloat(l.Product.Price).Mul(decimal.NewFromInt(int64(l.Quantity)))
}
