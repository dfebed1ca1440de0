package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Money pairs an amount with the session currency for display; cart
// arithmetic itself works on bare decimals.
type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, unit currency.Unit) Money {
	return Money{Amount: amount, Currency: unit}
}
