package page

// Attribute names recognised by Attach.
const (
	AttrType      = "type"
	AttrName      = "name"
	AttrMask      = "data-mask"
	AttrSearch    = "data-search"
	AttrAutosave  = "data-autosave"
	AttrMaxLength = "data-maxlength"
	AttrConfirm   = "data-confirm"
)

const (
	tagTextarea = "textarea"
	typeTel     = "tel"
)

// Element is a form control or button of the hosted document. Implementations
// must be comparable (typically pointers): bindings are keyed by element.
type Element interface {
	Tag() string
	Attr(name string) (string, bool)
	Value() string
	SetValue(v string)
}

// Form is a form of the hosted document.
type Form interface {
	Attr(name string) (string, bool)
	Elements() []Element
}

// Root is the hosted document.
type Root interface {
	Elements() []Element
	Forms() []Form
}

func attr(el interface {
	Attr(string) (string, bool)
}, name string) string {
	v, _ := el.Attr(name)
	return v
}

func hasAttr(el interface {
	Attr(string) (string, bool)
}, name string) bool {
	_, ok := el.Attr(name)
	return ok
}
