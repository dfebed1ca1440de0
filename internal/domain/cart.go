package domain

import (
	"github.com/shopspring/decimal"
)

const MinQuantity = 1

// CartItem is identified by the id of the embedded product.
type CartItem struct {
	Product  Product
	Quantity int
}

// MaxQuantity is the stock proxy of the embedded product.
func (i CartItem) MaxQuantity() int {
	return i.Product.Rating.Count
}

type CartTotals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}
