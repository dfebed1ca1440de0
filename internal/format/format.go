// Package format renders prices and text for the cart views.
package format

import (
	"github.com/nikolayk812/shopcart/internal/domain"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BritishEnglish)

// Price renders m with its currency symbol, e.g. "£ 109.95".
func Price(m domain.Money) string {
	return printer.Sprintf("%v", currency.Symbol(m.Currency.Amount(m.Amount.InexactFloat64())))
}

// Truncate cuts text to length runes and appends "..." when it was longer.
func Truncate(text string, length int) string {
	runes := []rune(text)
	if len(runes) <= length {
		return text
	}
	return string(runes[:length]) + "..."
}
