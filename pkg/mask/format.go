package mask

import "strings"

// Formatter renders a digit-only string for display.
type Formatter func(digits string) string

// separator is inserted after the first `after` digits, but only when at
// least one more digit follows.
type separator struct {
	after int
	text  string
}

var (
	taxIDFormat      = grouped(separator{3, "."}, separator{6, "."}, separator{9, "-"})
	postalCodeFormat = grouped(separator{5, "-"})
)

// FormatPhone renders "(DD) DDDDD-DDDD". The area code is wrapped once a third
// digit exists, and the hyphen goes before the last four digits once the
// subscriber number has at least five, so both 8 and 9 digit numbers come out
// right: "1133334444" -> "(11) 3333-4444".
func FormatPhone(digits string) string {
	if len(digits) < 3 {
		return digits
	}
	return "(" + digits[:2] + ") " + hyphenateTail(digits[2:], 4)
}

// FormatTaxID renders a CPF as "DDD.DDD.DDD-DD".
func FormatTaxID(digits string) string {
	return taxIDFormat(digits)
}

// FormatPostalCode renders a CEP as "DDDDD-DDD".
func FormatPostalCode(digits string) string {
	return postalCodeFormat(digits)
}

func hyphenateTail(s string, tail int) string {
	if len(s) <= tail {
		return s
	}
	cut := len(s) - tail
	return s[:cut] + "-" + s[cut:]
}

// grouped builds a formatter from separators ordered by position.
func grouped(seps ...separator) Formatter {
	return func(digits string) string {
		var b strings.Builder
		b.Grow(len(digits) + len(seps))

		prev := 0
		for _, s := range seps {
			if len(digits) <= s.after {
				break
			}
			b.WriteString(digits[prev:s.after])
			b.WriteString(s.text)
			prev = s.after
		}
		b.WriteString(digits[prev:])
		return b.String()
	}
}
