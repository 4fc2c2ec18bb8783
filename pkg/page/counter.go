package page

import "unicode/utf8"

const (
	classMuted  = "text-muted"
	classDanger = "text-danger"
)

// Counter is the state of a textarea character counter.
type Counter struct {
	Remaining int
	Text      string
	Class     string
}

// Counter returns the counter for a textarea bound with data-maxlength.
// Length is measured in runes.
func (p *Page) Counter(el Element) (Counter, bool) {
	limit, ok := p.counters[el]
	if !ok {
		return Counter{}, false
	}
	remaining := limit - utf8.RuneCountInString(el.Value())
	c := Counter{
		Remaining: remaining,
		Text:      p.printer.Sprintf(msgRemaining, remaining),
		Class:     classMuted,
	}
	if remaining < 0 {
		c.Class = classDanger
	}
	return c, true
}
