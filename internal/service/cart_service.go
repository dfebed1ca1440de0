// Package service holds the cart pricing and quantity rules. Every function
// is pure: the same inputs always give the same totals.
package service

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/nikolayk812/shopcart/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrNonIntegerQuantity = errors.New("quantity is not an integer")
	ErrQuantityOutOfRange = errors.New("quantity is out of range")
)

var (
	VATRate = decimal.RequireFromString("0.20")

	hundred = decimal.NewFromInt(100)
	half    = decimal.RequireFromString("0.5")

	maxInt = decimal.NewFromInt(math.MaxInt)
	minInt = decimal.NewFromInt(math.MinInt)
)

// CalculateTotals rounds every field independently from the unrounded
// subtotal, tax and shipping.
func CalculateTotals(items []domain.CartItem, shippingCost decimal.Decimal) domain.CartTotals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	tax := subtotal.Mul(VATRate)
	total := subtotal.Add(shippingCost).Add(tax)

	return domain.CartTotals{
		Subtotal: RoundPrice(subtotal),
		Shipping: RoundPrice(shippingCost),
		Tax:      RoundPrice(tax),
		Total:    RoundPrice(total),
	}
}

// RoundPrice rounds to cents with ties going towards positive infinity:
// 10.125 becomes 10.13 and -10.125 becomes -10.12.
func RoundPrice(value decimal.Decimal) decimal.Decimal {
	return value.Mul(hundred).Add(half).Floor().Div(hundred)
}

// ValidateQuantity checks quantity against [domain.MinQuantity, maxQuantity].
func ValidateQuantity(quantity, maxQuantity int) bool {
	return ValidateQuantityRange(quantity, domain.MinQuantity, maxQuantity)
}

func ValidateQuantityRange(quantity, minQuantity, maxQuantity int) bool {
	return quantity >= minQuantity && quantity <= maxQuantity
}

// ParseQuantity turns user input into a quantity; "1.5" and "5.99" are
// rejected with ErrNonIntegerQuantity while "3.0" is accepted. Integers that
// do not fit an int fail with ErrQuantityOutOfRange.
func ParseQuantity(s string) (int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("decimal.NewFromString: %w", err)
	}

	if !d.IsInteger() {
		return 0, fmt.Errorf("quantity[%s]: %w", s, ErrNonIntegerQuantity)
	}

	if d.GreaterThan(maxInt) || d.LessThan(minInt) {
		return 0, fmt.Errorf("quantity[%s]: %w", s, ErrQuantityOutOfRange)
	}

	return int(d.IntPart()), nil
}
