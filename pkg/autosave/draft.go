package autosave

import (
	"context"
	"maps"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
)

// KeyPrefix precedes the form id in storage keys.
const KeyPrefix = "form_"

const passwordType = "password"

// Draft is the saved state of one form.
type Draft struct {
	FormID  string            `json:"form_id"`
	Values  map[string]string `json:"values"`
	SavedAt time.Time         `json:"saved_at"`
}

// Field is one named input of a form.
type Field struct {
	Name  string
	Type  string
	Value string
}

// Store persists drafts by form id.
type Store interface {
	Save(ctx context.Context, d Draft) error
	Load(ctx context.Context, formID string) (Draft, error)
	Delete(ctx context.Context, formID string) error
}

// Option configures a store.
type Option func(*options)

type options struct {
	clock  clockwork.Clock
	ttl    time.Duration
	prefix string
}

// WithClock sets the clock used for SavedAt and expiry.
func WithClock(c clockwork.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithTTL expires drafts d after their last save. Zero keeps them forever.
func WithTTL(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.ttl = d
		}
	}
}

// WithPrefix namespaces keys, e.g. "clubkit:" gives "clubkit:form_member".
func WithPrefix(p string) Option {
	return func(o *options) { o.prefix = p }
}

func newOptions(opts []Option) options {
	o := options{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) key(formID string) string {
	return o.prefix + KeyPrefix + formID
}

// Snapshot builds a draft from the current field values. Unnamed fields and
// password inputs are skipped; for repeated names the last value wins.
func Snapshot(formID string, fields []Field) Draft {
	values := make(map[string]string, len(fields))
	for _, f := range fields {
		if f.Name == "" || isPassword(f.Type) {
			continue
		}
		values[f.Name] = f.Value
	}
	return Draft{FormID: formID, Values: values}
}

// Restore returns the draft values to write back into fields, keyed by field
// name. Values without a matching field and password inputs are left out.
func Restore(d Draft, fields []Field) map[string]string {
	out := make(map[string]string)
	for _, f := range fields {
		if isPassword(f.Type) {
			continue
		}
		if v, ok := d.Values[f.Name]; ok {
			out[f.Name] = v
		}
	}
	return out
}

func isPassword(inputType string) bool {
	return strings.EqualFold(inputType, passwordType)
}

func cloneDraft(d Draft) Draft {
	d.Values = maps.Clone(d.Values)
	if d.Values == nil {
		d.Values = map[string]string{}
	}
	return d
}
