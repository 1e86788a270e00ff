package internal

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency formats statement amounts for display.
type Currency struct {
	Code    string // "USD", "MXN", "EUR"
	unit    currency.Unit
	printer *message.Printer
}

// defaultLocaleForCurrency picks a "home" locale for each supported
// currency so separators come out the way local users expect.
var defaultLocaleForCurrency = map[string]language.Tag{
	"USD": language.AmericanEnglish,
	"EUR": language.EuropeanSpanish,
	"MXN": language.MustParse("es-MX"),
	"COP": language.MustParse("es-CO"),
	"CLP": language.MustParse("es-CL"),
	"ARS": language.MustParse("es-AR"),
	"PEN": language.MustParse("es-PE"),
	"GTQ": language.MustParse("es-GT"),
	"DOP": language.MustParse("es-DO"),
	"BOB": language.MustParse("es-BO"),
}

// GetCurrency returns the Currency for a given code. Unknown codes fall
// back to USD-style number formatting with the code itself as symbol.
func GetCurrency(code string) Currency {
	code = strings.ToUpper(code)

	unit, err := currency.ParseISO(code)
	isUnknown := err != nil
	if isUnknown {
		unit = currency.USD // fallback unit for number formatting only
	}

	tag, ok := defaultLocaleForCurrency[code]
	if !ok {
		tag = language.LatinAmericanSpanish
	}

	c := Currency{
		Code:    code,
		unit:    unit,
		printer: message.NewPrinter(tag),
	}
	return c
}

// getSymbol returns the narrow currency symbol ("$", "€", ...)
func (c Currency) getSymbol() string {
	if _, err := currency.ParseISO(c.Code); err != nil {
		return c.Code
	}
	return c.printer.Sprint(currency.NarrowSymbol(c.unit))
}

// Format formats a single amount with the currency symbol. Statement
// figures are whole monetary units, so no fraction digits.
func (c Currency) Format(amount float64) string {
	formatted := c.printer.Sprint(number.Decimal(amount, number.MaxFractionDigits(0)))
	return c.getSymbol() + formatted
}
