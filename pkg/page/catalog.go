package page

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

const (
	msgConfirm   = "confirm.default"
	msgRemaining = "counter.remaining"
)

//go:embed messages.yaml
var messagesYAML []byte

// The embedded catalog is compiled once per process.
var defaultCatalog, defaultCatalogErr = parseCatalog(messagesYAML)

type messages struct {
	builder *catalog.Builder
	langs   []language.Tag
	matcher language.Matcher
}

// parseCatalog reads a YAML document mapping language tags to key/message
// pairs. Brazilian Portuguese must be present; it is the fallback language.
func parseCatalog(data []byte) (*messages, error) {
	var raw map[string]map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrCatalog, err)
	}

	b := catalog.NewBuilder(catalog.Fallback(language.BrazilianPortuguese))
	langs := []language.Tag{language.BrazilianPortuguese}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var hasFallback bool
	for _, name := range keys {
		tag, err := language.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrCatalog, name)
		}
		for key, msg := range raw[name] {
			if err := b.SetString(tag, key, strings.TrimSpace(msg)); err != nil {
				return nil, errors.Join(ErrCatalog, err)
			}
		}
		if tag == language.BrazilianPortuguese {
			hasFallback = true
			continue
		}
		langs = append(langs, tag)
	}
	if !hasFallback {
		return nil, fmt.Errorf("%w: missing %s messages", ErrCatalog, language.BrazilianPortuguese)
	}

	return &messages{
		builder: b,
		langs:   langs,
		matcher: language.NewMatcher(langs),
	}, nil
}

// printer returns a printer for the supported language closest to tag.
func (m *messages) printer(tag language.Tag) *message.Printer {
	_, idx, _ := m.matcher.Match(tag)
	return message.NewPrinter(m.langs[idx], message.Catalog(m.builder))
}
