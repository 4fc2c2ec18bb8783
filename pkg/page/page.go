package page

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/clubkit/pkg/autosave"
	"github.com/dmitrymomot/clubkit/pkg/logger"
	"github.com/dmitrymomot/clubkit/pkg/mask"
	"github.com/dmitrymomot/clubkit/pkg/ratelimiter"
)

// SearchFunc runs a live search for the current text of a data-search input.
type SearchFunc func(ctx context.Context, el Element, query string)

// Option configures Attach.
type Option func(*Page)

func WithLogger(log *slog.Logger) Option {
	return func(p *Page) {
		if log != nil {
			p.log = log
		}
	}
}

// WithClock sets the clock behind the search debouncer and the rate limiter
// factories.
func WithClock(c clockwork.Clock) Option {
	return func(p *Page) {
		if c != nil {
			p.clock = c
		}
	}
}

// WithStore sets the draft store. Defaults to an in-memory store.
func WithStore(s autosave.Store) Option {
	return func(p *Page) {
		if s != nil {
			p.store = s
		}
	}
}

// WithSearchHandler sets the live search handler. Defaults to logging the
// query at debug level.
func WithSearchHandler(fn SearchFunc) Option {
	return func(p *Page) {
		if fn != nil {
			p.search = fn
		}
	}
}

// WithMasker replaces the default Brazilian masker.
func WithMasker(m *mask.Masker) Option {
	return func(p *Page) {
		if m != nil {
			p.masker = m
		}
	}
}

// WithLanguage overrides Config.Language.
func WithLanguage(tag language.Tag) Option {
	return func(p *Page) { p.lang = &tag }
}

type searchCall struct {
	ctx   context.Context
	el    Element
	query string
}

type autosaveForm struct {
	id   string
	form Form
}

// Page holds the behaviours bound to one document.
type Page struct {
	cfg     Config
	log     *slog.Logger
	clock   clockwork.Clock
	store   autosave.Store
	search  SearchFunc
	masker  *mask.Masker
	lang    *language.Tag
	printer *message.Printer

	masks    map[Element]mask.Kind
	searches map[Element]*ratelimiter.Debouncer[searchCall]
	direct   map[Element]bool
	counters map[Element]int
	owners   map[Element]*autosaveForm
	forms    map[Form]*autosaveForm

	mu   sync.Mutex
	last map[Element]string
}

// Attach scans root once and binds every behaviour enabled by cfg. Saved
// drafts of autosave forms are restored before Attach returns; a store
// failure during restore is logged and does not fail the attach.
func Attach(ctx context.Context, root Root, cfg Config, opts ...Option) (*Page, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	if defaultCatalogErr != nil {
		return nil, defaultCatalogErr
	}

	p := &Page{
		cfg:      cfg,
		log:      logger.Discard(),
		clock:    clockwork.NewRealClock(),
		masker:   mask.New(),
		masks:    make(map[Element]mask.Kind),
		searches: make(map[Element]*ratelimiter.Debouncer[searchCall]),
		direct:   make(map[Element]bool),
		counters: make(map[Element]int),
		owners:   make(map[Element]*autosaveForm),
		forms:    make(map[Form]*autosaveForm),
		last:     make(map[Element]string),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.store == nil {
		p.store = autosave.NewMemoryStore(autosave.WithClock(p.clock))
	}
	if p.search == nil {
		p.search = p.logSearch
	}

	tag := language.BrazilianPortuguese
	if p.lang != nil {
		tag = *p.lang
	} else if cfg.Language != "" {
		parsed, err := language.Parse(cfg.Language)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLanguage, cfg.Language)
		}
		tag = parsed
	}
	p.printer = defaultCatalog.printer(tag)
	p.log = p.log.With(logger.Component("page"))

	for _, el := range root.Elements() {
		if el == nil {
			continue
		}
		p.bindMask(el)
		p.bindSearch(el)
		p.bindCounter(el)
	}

	if cfg.Autosave {
		for _, f := range root.Forms() {
			if f != nil {
				p.bindAutosave(ctx, f)
			}
		}
	}

	p.log.DebugContext(ctx, "page attached",
		slog.Int("masks", len(p.masks)),
		slog.Int("searches", len(p.searches)+len(p.direct)),
		slog.Int("counters", len(p.counters)),
		slog.Int("autosave_forms", len(p.forms)),
	)
	return p, nil
}

func (p *Page) bindMask(el Element) {
	var kind mask.Kind
	switch {
	case hasAttr(el, AttrMask):
		k, err := mask.ParseKind(attr(el, AttrMask))
		if err != nil {
			p.log.Warn("unknown mask attribute", logger.Error(err), logger.Field(attr(el, AttrName)))
			return
		}
		kind = k
	case strings.EqualFold(attr(el, AttrType), typeTel):
		kind = mask.Phone
	default:
		return
	}
	if !p.cfg.maskEnabled(kind) {
		return
	}
	p.masks[el] = kind
}

func (p *Page) bindSearch(el Element) {
	if !hasAttr(el, AttrSearch) {
		return
	}
	if !p.cfg.RateLimiters {
		p.direct[el] = true
		return
	}
	p.searches[el] = ratelimiter.Debounce(func(c searchCall) {
		p.search(c.ctx, c.el, c.query)
	}, p.cfg.searchDelay(), ratelimiter.WithClock(p.clock))
}

func (p *Page) bindCounter(el Element) {
	if !strings.EqualFold(el.Tag(), tagTextarea) || !hasAttr(el, AttrMaxLength) {
		return
	}
	raw := attr(el, AttrMaxLength)
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		p.log.Warn("invalid maxlength attribute", logger.Error(err), logger.Field(attr(el, AttrName)))
		return
	}
	p.counters[el] = n
}

func (p *Page) bindAutosave(ctx context.Context, f Form) {
	if !hasAttr(f, AttrAutosave) {
		return
	}
	id := strings.TrimSpace(attr(f, AttrAutosave))
	if id == "" {
		p.log.WarnContext(ctx, "autosave form without id")
		return
	}

	binding := &autosaveForm{id: id, form: f}
	p.forms[f] = binding
	for _, el := range f.Elements() {
		if el != nil {
			p.owners[el] = binding
		}
	}

	if err := p.restore(ctx, binding); err != nil {
		p.log.WarnContext(ctx, "draft restore failed", logger.FormID(id), logger.Error(err))
	}
}

func (p *Page) restore(ctx context.Context, b *autosaveForm) error {
	draft, err := p.store.Load(ctx, b.id)
	if errors.Is(err, autosave.ErrDraftNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	elements := b.form.Elements()
	values := autosave.Restore(draft, fields(elements))
	for _, el := range elements {
		if el == nil {
			continue
		}
		if v, ok := values[attr(el, AttrName)]; ok {
			el.SetValue(v)
		}
	}
	p.log.DebugContext(ctx, "draft restored", logger.FormID(b.id), logger.Count(len(values)))
	return nil
}

func (p *Page) logSearch(ctx context.Context, el Element, query string) {
	p.log.DebugContext(ctx, "search", logger.Field(attr(el, AttrName)), slog.String("query", query))
}

// Close cancels pending debounced searches.
func (p *Page) Close() {
	for _, d := range p.searches {
		d.Cancel()
	}
}

func fields(elements []Element) []autosave.Field {
	out := make([]autosave.Field, 0, len(elements))
	for _, el := range elements {
		if el == nil {
			continue
		}
		out = append(out, autosave.Field{
			Name:  attr(el, AttrName),
			Type:  attr(el, AttrType),
			Value: el.Value(),
		})
	}
	return out
}
