package validator

import (
	"context"
	"embed"
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/fieldcheck/pkg/i18n"
)

// Messages resolves a message code to localized text.
// Lookup returns an empty string for an unknown code.
type Messages interface {
	Lookup(locale language.Tag, code string) string
}

// MessagesFunc adapts a function to the Messages interface.
type MessagesFunc func(locale language.Tag, code string) string

func (f MessagesFunc) Lookup(locale language.Tag, code string) string {
	return f(locale, code)
}

// Catalog serves messages from an i18n.Translator. A requested locale is
// matched against the languages the translator knows, so "en-GB" is served
// by "en". Codes missing in the matched language fall back to the
// translator's default language.
type Catalog struct {
	translator *i18n.Translator
}

// NewCatalog loads translations through adapter. Translator options such as
// i18n.WithDefaultLanguage apply.
func NewCatalog(ctx context.Context, adapter i18n.TranslationAdapter, opts ...i18n.Option) (*Catalog, error) {
	translator, err := i18n.NewTranslator(ctx, adapter, opts...)
	if err != nil {
		return nil, err
	}
	return &Catalog{translator: translator}, nil
}

func (c *Catalog) Lookup(locale language.Tag, code string) string {
	text, _ := c.translator.Text(locale, code)
	return text
}

// Languages lists the catalog languages, default first.
func (c *Catalog) Languages() []string {
	tags := c.translator.Languages()
	codes := make([]string, len(tags))
	for i, tag := range tags {
		codes[i] = tag.String()
	}
	return codes
}

// Reload re-reads the catalog's source.
func (c *Catalog) Reload(ctx context.Context) error {
	return c.translator.Reload(ctx)
}

//go:embed locales/*.yaml
var localesFS embed.FS

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// DefaultCatalog returns the built-in English and Russian messages.
// It panics if the embedded catalogs cannot be loaded.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), localesFS, "locales")
		catalog, err := NewCatalog(context.Background(), adapter, i18n.WithDefaultLanguage(i18n.DefaultLanguage))
		if err != nil {
			panic(fmt.Errorf("validator: load embedded messages: %w", err))
		}
		defaultCatalog = catalog
	})
	return defaultCatalog
}

// Render substitutes a message template. %DEFAULT_MESSAGE% becomes
// defaultText, then each %NAME% token with a matching entry in params becomes
// the formatted value. Unknown tokens are left as they are.
func Render(template, defaultText string, params map[string]any) string {
	out := strings.ReplaceAll(template, DefaultMessage, defaultText)
	if len(params) == 0 || !strings.Contains(out, "%") {
		return out
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	slices.Sort(names)

	pairs := make([]string, 0, len(names)*2)
	for _, name := range names {
		pairs = append(pairs, "%"+name+"%", formatParam(params[name]))
	}
	return strings.NewReplacer(pairs...).Replace(out)
}

func formatParam(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	default:
		return fmt.Sprint(v)
	}
}
