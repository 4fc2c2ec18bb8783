// Package mask provides display masks for the numeric input fields used across
// the club forms: phone numbers, tax ids (CPF), postal codes (CEP) and money.
//
// Every mask follows the same shape. The raw field content is reduced to its
// decimal digits, then a formatter selected by Kind re-inserts the literal
// separators for that field type:
//
//	mask.Apply(mask.Phone, "", "11987654321")     // "(11) 98765-4321"
//	mask.Apply(mask.TaxID, "", "123.456.78901")   // "123.456.789-01"
//	mask.Apply(mask.PostalCode, "", "12345678")   // "12345-678"
//	mask.Apply(mask.Currency, "", "R$ 1.234,5")   // "R$ 123,45"
//
// Separators are only inserted once the digit that follows them exists, so a
// partially typed value is rendered as far as it goes ("5" stays "5", "1198"
// becomes "(11) 98"). Masks never truncate: digits typed past the last slot
// of a pattern are kept after it. Masks never validate either; check digits
// and area codes are the business of the form validator.
//
// The currency mask reads the digits as an amount of minor units (cents) and
// renders it with the grouping, decimal separator and symbol of the configured
// locale. The default Masker uses Brazilian Portuguese and BRL.
//
// # Usage
//
//	m := mask.New(
//	    mask.WithLocale(language.AmericanEnglish),
//	    mask.WithCurrency(currency.USD),
//	)
//	m.Apply(mask.Currency, "", "123456") // "$ 1,234.56"
//
// Field attributes are mapped to kinds with ParseKind, which accepts both the
// canonical names and the legacy attribute values ("tel", "cpf", "cep").
//
// # Caret
//
// Apply returns only the new value. Callers that write it back into an input
// control should place the caret at the end of the value.
//
// # Error handling
//
// Apply is total: any string is accepted and empty input yields empty output.
// An unknown Kind returns the extracted digits unchanged.
//
// A Masker is immutable after New and safe for concurrent use.
package mask
