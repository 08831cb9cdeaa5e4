// Package format provides display formatting for monetary amounts and
// percentages in the report's fixed pt-BR locale (period as thousands
// separator, comma as decimal separator, "R$" prefix).
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Currency returns a currency string with the R$ symbol and locale
// separators (e.g., "R$ 149.143,46"). Negative amounts carry a leading
// minus sign before the symbol (e.g., "-R$ 1.234,56").
func Currency(amount decimal.Decimal) string {
	if amount.Sign() < 0 {
		return "-R$ " + printer.Sprintf("%.2f", amount.Neg().InexactFloat64())
	}
	return "R$ " + printer.Sprintf("%.2f", amount.InexactFloat64())
}

// Percent returns a percentage string with locale separators and a trailing
// percent sign (e.g., "6,09%").
func Percent(amount decimal.Decimal) string {
	if amount.Sign() < 0 {
		return "-" + printer.Sprintf("%.2f%%", amount.Neg().InexactFloat64())
	}
	return printer.Sprintf("%.2f%%", amount.InexactFloat64())
}
