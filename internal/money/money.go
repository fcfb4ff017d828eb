// Package money formats amounts for display. Amounts are plain float64 values as the
// API sends them; they are rounded to whole units only when shown.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DefaultCurrency = "USD"

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"JPY": "¥",
	"CAD": "C$",
	"AUD": "A$",
}

var printer = message.NewPrinter(language.English)

// Whole rounds half away from zero to a whole unit.
func Whole(amount float64) int64 {
	return decimal.NewFromFloat(amount).Round(0).IntPart()
}

// Symbol returns the display symbol for an ISO currency code, or the code itself.
func Symbol(currency string) string {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" {
		code = DefaultCurrency
	}
	if s, ok := symbols[code]; ok {
		return s
	}
	return code + " "
}

// Format renders amount as a grouped whole number with its currency symbol, e.g. $18,000.
func Format(amount float64, currency string) string {
	n := Whole(amount)
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return sign + Symbol(currency) + printer.Sprintf("%d", n)
}

// Number renders a grouped whole number without a symbol.
func Number(amount float64) string {
	return printer.Sprintf("%d", Whole(amount))
}
