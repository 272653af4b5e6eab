// Package money renders totals the way estimates display them.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Format renders an amount as US dollars with thousands separators and two
// decimals: 1234.5 becomes "$1,234.50".
func Format(amount decimal.Decimal) string {
	return "$" + printer.Sprintf("%.2f", amount.Round(2).InexactFloat64())
}

// FormatFloat formats a stored price column.
func FormatFloat(amount float64) string {
	return Format(decimal.NewFromFloat(amount))
}
