package mask_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/dmitrymomot/clubkit/pkg/mask"
)

// Re-masking a masked value must not change it.
func TestApplyIdempotentProperty(t *testing.T) {
	maxDigits := map[mask.Kind]int{
		mask.Phone:      11,
		mask.TaxID:      11,
		mask.PostalCode: 8,
		mask.Currency:   15,
	}

	rapid.Check(t, func(t *rapid.T) {
		kind := rapid.SampledFrom(mask.Kinds()).Draw(t, "kind")
		n := rapid.IntRange(0, maxDigits[kind]).Draw(t, "length")
		digits := rapid.StringOfN(rapid.RuneFrom([]rune("0123456789")), n, n, -1).Draw(t, "digits")

		once := mask.Apply(kind, "", digits)
		twice := mask.Apply(kind, once, once)
		if once != twice {
			t.Fatalf("%s: %q -> %q -> %q", kind, digits, once, twice)
		}
		if kind != mask.Currency && mask.Digits(once) != digits {
			t.Fatalf("%s: digits changed: %q -> %q", kind, digits, once)
		}
	})
}

// Only digits matter: any surrounding text masks like the bare digits.
func TestApplyDependsOnDigitsOnlyProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		kind := rapid.SampledFrom(mask.Kinds()).Draw(t, "kind")
		raw := rapid.StringMatching(`[0-9a-zA-Z .()\-R$,]{0,24}`).Draw(t, "raw")

		if got, want := mask.Apply(kind, "", raw), mask.Apply(kind, "", mask.Digits(raw)); got != want {
			t.Fatalf("%s: %q -> %q, digits-only gives %q", kind, raw, got, want)
		}
	})
}
