package mask

import (
	"fmt"
	"strings"
)

// Kind selects the formatter applied to a field.
type Kind string

const (
	Phone      Kind = "phone"
	TaxID      Kind = "tax-id"
	PostalCode Kind = "postal-code"
	Currency   Kind = "currency"
)

// Legacy attribute values still present in the server templates.
var aliases = map[string]Kind{
	"tel": Phone,
	"cpf": TaxID,
	"cep": PostalCode,
}

// Kinds returns the built-in kinds in a stable order.
func Kinds() []Kind {
	return []Kind{Phone, TaxID, PostalCode, Currency}
}

func (k Kind) String() string {
	return string(k)
}

// Valid reports whether k is one of the built-in kinds.
func (k Kind) Valid() bool {
	switch k {
	case Phone, TaxID, PostalCode, Currency:
		return true
	}
	return false
}

// ParseKind maps a field attribute value to a Kind. Matching is case-insensitive
// and ignores surrounding whitespace.
func ParseKind(attr string) (Kind, error) {
	v := strings.ToLower(strings.TrimSpace(attr))
	if k := Kind(v); k.Valid() {
		return k, nil
	}
	if k, ok := aliases[v]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, attr)
}

// UnmarshalText accepts the same spellings as ParseKind, so kinds can be read
// from environment variables and JSON.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
