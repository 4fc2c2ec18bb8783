package autosave_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/clubkit/pkg/autosave"
)

func TestSnapshot(t *testing.T) {
	t.Parallel()

	d := autosave.Snapshot("member", []autosave.Field{
		{Name: "name", Type: "text", Value: "Ana"},
		{Name: "password", Type: "password", Value: "secret"},
		{Name: "confirm", Type: "PASSWORD", Value: "secret"},
		{Name: "", Type: "text", Value: "orphan"},
		{Name: "phone", Type: "tel", Value: "(11) 9"},
		{Name: "phone", Type: "tel", Value: "(11) 98765-4321"},
	})

	assert.Equal(t, "member", d.FormID)
	assert.Equal(t, map[string]string{
		"name":  "Ana",
		"phone": "(11) 98765-4321",
	}, d.Values)
	assert.True(t, d.SavedAt.IsZero())
}

func TestRestore(t *testing.T) {
	t.Parallel()

	d := autosave.Draft{
		FormID: "member",
		Values: map[string]string{
			"name":     "Ana",
			"password": "leaked",
			"removed":  "gone",
			"cpf":      "123.456.789-01",
		},
	}
	fields := []autosave.Field{
		{Name: "name", Type: "text"},
		{Name: "password", Type: "password"},
		{Name: "cpf", Type: "text"},
		{Name: "notes", Type: "textarea"},
	}

	assert.Equal(t, map[string]string{
		"name": "Ana",
		"cpf":  "123.456.789-01",
	}, autosave.Restore(d, fields))
}

func TestRestoreEmptyDraft(t *testing.T) {
	t.Parallel()

	got := autosave.Restore(autosave.Draft{}, []autosave.Field{{Name: "name", Type: "text"}})
	assert.Empty(t, got)
}
