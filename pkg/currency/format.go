// Package currency renders integer minor-unit amounts (cents) for
// human-facing text. All amounts cross API boundaries as integers; this
// formatter exists only for interpolating alert messages.
package currency

import (
	"fmt"
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter formats minor-unit amounts in a fixed locale and currency.
type Formatter struct {
	unit    currency.Unit
	printer *message.Printer
	scale   int
}

// New creates a formatter for the given BCP 47 locale and ISO 4217 code
func New(locale, unitCode string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(unitCode)
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", unitCode, err)
	}

	scale, _ := currency.Cash.Rounding(unit)

	return &Formatter{
		unit:    unit,
		printer: message.NewPrinter(tag),
		scale:   scale,
	}, nil
}

// Format renders a minor-unit amount with the currency symbol, e.g.
// Format(150000) -> "R$ 1.500,00" for a pt-BR/BRL formatter.
func (f *Formatter) Format(minorUnits int64) string {
	value := float64(minorUnits) / math.Pow10(f.scale)
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(value)))
}
