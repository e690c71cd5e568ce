// Package messages renders validation error codes into user facing text.
//
// Templates live in static per-locale tables and use positional {0}, {1}
// placeholders. Numeric arguments are formatted for the selected locale with
// golang.org/x/text/message, so 10000 renders as "10,000".
package messages

import (
	"fmt"
	"regexp"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jsamuelsen11/go-item-service/internal/domain/validation"
)

var placeholder = regexp.MustCompile(`\{(\d+)\}`)

// Catalog holds the message tables and picks one per request.
type Catalog struct {
	tables   map[language.Tag]map[string]string
	tags     []language.Tag
	matcher  language.Matcher
	fallback language.Tag
}

// NewCatalog returns a catalog over the built-in tables. defaultLocale is
// used when Accept-Language matches nothing.
func NewCatalog(defaultLocale string) (*Catalog, error) {
	fallback, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("parsing default locale %q: %w", defaultLocale, err)
	}

	tables := builtinTables()
	if _, ok := tables[fallback]; !ok {
		return nil, fmt.Errorf("no messages for default locale %q", defaultLocale)
	}

	// The fallback goes first so the matcher returns it on no match.
	tags := []language.Tag{fallback}
	for tag := range tables {
		if tag != fallback {
			tags = append(tags, tag)
		}
	}

	return &Catalog{
		tables:   tables,
		tags:     tags,
		matcher:  language.NewMatcher(tags),
		fallback: fallback,
	}, nil
}

// Default returns the source for the default locale.
func (c *Catalog) Default() *Source {
	return c.source(c.fallback)
}

// For returns the source best matching an Accept-Language header value.
func (c *Catalog) For(acceptLanguage string) *Source {
	if acceptLanguage == "" {
		return c.Default()
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return c.Default()
	}
	_, idx, _ := c.matcher.Match(prefs...)
	return c.source(c.tags[idx])
}

func (c *Catalog) source(tag language.Tag) *Source {
	return &Source{
		tag:      tag,
		table:    c.tables[tag],
		fallback: c.tables[c.fallback],
		printer:  message.NewPrinter(tag),
	}
}

var _ validation.MessageSource = (*Source)(nil)

// Source is a validation.MessageSource bound to one locale. Codes missing
// from its table are looked up in the default locale's table.
type Source struct {
	tag      language.Tag
	table    map[string]string
	fallback map[string]string
	printer  *message.Printer
}

// Tag is the locale the source renders for.
func (s *Source) Tag() language.Tag { return s.tag }

// Message implements validation.MessageSource.
func (s *Source) Message(code string, args []any) (string, bool) {
	tmpl, ok := s.table[code]
	if !ok {
		if tmpl, ok = s.fallback[code]; !ok {
			return "", false
		}
	}
	return s.render(tmpl, args), true
}

// Resolve renders res, falling back to its default message or code.
func (s *Source) Resolve(res validation.Resolvable) string {
	return validation.ResolveMessage(s, res)
}

func (s *Source) render(tmpl string, args []any) string {
	return placeholder.ReplaceAllStringFunc(tmpl, func(m string) string {
		i, err := strconv.Atoi(m[1 : len(m)-1])
		if err != nil || i >= len(args) {
			return m
		}
		return s.format(args[i])
	})
}

func (s *Source) format(arg any) string {
	switch v := arg.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return s.printer.Sprintf("%d", v)
	case float32, float64:
		return s.printer.Sprintf("%v", v)
	default:
		return fmt.Sprint(v)
	}
}
