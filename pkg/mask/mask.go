package mask

import (
	"strconv"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Masker applies display masks. The zero value is not usable; create one with New.
type Masker struct {
	locale     language.Tag
	unit       currency.Unit
	printer    *message.Printer
	formatters map[Kind]Formatter
}

// Option configures a Masker.
type Option func(*Masker)

// WithLocale sets the language used for currency grouping and decimal separators.
func WithLocale(tag language.Tag) Option {
	return func(m *Masker) { m.locale = tag }
}

// WithCurrency sets the currency unit whose symbol prefixes money values.
func WithCurrency(unit currency.Unit) Option {
	return func(m *Masker) { m.unit = unit }
}

// WithFormatter registers f for kind, replacing a built-in formatter or adding
// a new kind. Nil formatters are ignored.
func WithFormatter(kind Kind, f Formatter) Option {
	return func(m *Masker) {
		if f != nil && kind != "" {
			m.formatters[kind] = f
		}
	}
}

var defaultMasker = New()

// New returns a Masker for Brazilian Portuguese and BRL unless overridden.
func New(opts ...Option) *Masker {
	m := &Masker{
		locale: language.BrazilianPortuguese,
		unit:   currency.BRL,
	}
	m.formatters = map[Kind]Formatter{
		Phone:      FormatPhone,
		TaxID:      FormatTaxID,
		PostalCode: FormatPostalCode,
		Currency:   m.formatCurrency,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.printer = message.NewPrinter(m.locale)
	return m
}

// Apply returns the display value for the raw field content. The previous
// value is part of the edit-event contract and is not consulted: the mask is
// a function of the digits alone.
func (m *Masker) Apply(kind Kind, previous, raw string) string {
	digits := Digits(raw)
	if digits == "" {
		return ""
	}
	f, ok := m.formatters[kind]
	if !ok {
		return digits
	}
	return f(digits)
}

// Supports reports whether a formatter is registered for kind.
func (m *Masker) Supports(kind Kind) bool {
	_, ok := m.formatters[kind]
	return ok
}

// Locale returns the language used for currency formatting.
func (m *Masker) Locale() language.Tag {
	return m.locale
}

// formatCurrency reads digits as minor units. Precision is that of a float64,
// which only matters past fifteen digits.
func (m *Masker) formatCurrency(digits string) string {
	if digits == "" {
		return ""
	}
	// ParseFloat only fails with ErrRange here, and then returns ±Inf.
	units, _ := strconv.ParseFloat(digits, 64)
	return m.printer.Sprint(currency.Symbol(m.unit.Amount(units / 100)))
}

// Apply masks raw with the default Masker (pt-BR, BRL).
func Apply(kind Kind, previous, raw string) string {
	return defaultMasker.Apply(kind, previous, raw)
}

// Digits strips every character that is not an ASCII decimal digit.
func Digits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}
