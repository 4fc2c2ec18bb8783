package mask_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clubkit/pkg/mask"
)

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		attr     string
		expected mask.Kind
	}{
		{attr: "phone", expected: mask.Phone},
		{attr: "tel", expected: mask.Phone},
		{attr: "tax-id", expected: mask.TaxID},
		{attr: "cpf", expected: mask.TaxID},
		{attr: " CPF ", expected: mask.TaxID},
		{attr: "postal-code", expected: mask.PostalCode},
		{attr: "cep", expected: mask.PostalCode},
		{attr: "currency", expected: mask.Currency},
	}

	for _, tt := range tests {
		t.Run(tt.attr, func(t *testing.T) {
			t.Parallel()
			kind, err := mask.ParseKind(tt.attr)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, kind)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()
		_, err := mask.ParseKind("iban")
		require.ErrorIs(t, err, mask.ErrUnknownKind)
		assert.Contains(t, err.Error(), `"iban"`)
	})
}

func TestKinds(t *testing.T) {
	t.Parallel()

	kinds := mask.Kinds()
	assert.Equal(t, []mask.Kind{mask.Phone, mask.TaxID, mask.PostalCode, mask.Currency}, kinds)
	for _, k := range kinds {
		assert.True(t, k.Valid(), k.String())
	}
	assert.False(t, mask.Kind("cpf").Valid(), "aliases are not kinds")
}

func TestKindUnmarshalText(t *testing.T) {
	t.Parallel()

	var kinds []mask.Kind
	require.NoError(t, json.Unmarshal([]byte(`["cpf","CEP","currency"]`), &kinds))
	assert.Equal(t, []mask.Kind{mask.TaxID, mask.PostalCode, mask.Currency}, kinds)

	var k mask.Kind
	assert.ErrorIs(t, k.UnmarshalText([]byte("iban")), mask.ErrUnknownKind)
	assert.Empty(t, k)
}
