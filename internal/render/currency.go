package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatCurrency renders a monetary value in Brazilian convention,
// e.g. 1234.5 -> "R$ 1.234,50".
func FormatCurrency(v float64) string {
	return ptBR.Sprintf("R$ %.2f", v)
}
