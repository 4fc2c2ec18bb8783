package page

import (
	"context"
	"errors"

	"github.com/dmitrymomot/clubkit/pkg/autosave"
	"github.com/dmitrymomot/clubkit/pkg/logger"
	"github.com/dmitrymomot/clubkit/pkg/mask"
)

// Input handles an edit event on el. The mask runs first and writes the
// display value back (the caret ends up after the last character), then the
// live search is scheduled and finally the draft of the enclosing autosave
// form is saved. Only a draft store failure is returned.
func (p *Page) Input(ctx context.Context, el Element) error {
	if el == nil {
		return nil
	}

	if kind, ok := p.masks[el]; ok {
		p.mu.Lock()
		previous := p.last[el]
		masked := p.masker.Apply(kind, previous, el.Value())
		p.last[el] = masked
		p.mu.Unlock()

		el.SetValue(masked)
	}

	if d, ok := p.searches[el]; ok {
		d.Call(searchCall{ctx: context.WithoutCancel(ctx), el: el, query: el.Value()})
	} else if p.direct[el] {
		p.search(ctx, el, el.Value())
	}

	if b, ok := p.owners[el]; ok {
		draft := autosave.Snapshot(b.id, fields(b.form.Elements()))
		if err := p.store.Save(ctx, draft); err != nil {
			p.log.WarnContext(ctx, "draft save failed", logger.FormID(b.id), logger.Error(err))
			return errors.Join(ErrAutosave, err)
		}
	}
	return nil
}

// Submit discards the saved draft of an autosave form. Other forms are
// ignored.
func (p *Page) Submit(ctx context.Context, f Form) error {
	b, ok := p.forms[f]
	if !ok {
		return nil
	}
	if err := p.store.Delete(ctx, b.id); err != nil {
		p.log.WarnContext(ctx, "draft delete failed", logger.FormID(b.id), logger.Error(err))
		return errors.Join(ErrAutosave, err)
	}
	return nil
}

// ConfirmMessage returns the confirmation prompt for el: its data-confirm
// text, or the localized default when the attribute is empty.
func (p *Page) ConfirmMessage(el Element) string {
	if msg := attr(el, AttrConfirm); msg != "" {
		return msg
	}
	return p.printer.Sprintf(msgConfirm)
}

// MaskKind reports the mask bound to el.
func (p *Page) MaskKind(el Element) (mask.Kind, bool) {
	k, ok := p.masks[el]
	return k, ok
}
