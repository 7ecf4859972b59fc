package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/text/language"
)

// DefaultLanguage is the language used when a translator is not told otherwise.
var DefaultLanguage = language.English

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language that serves requests no catalog
// language matches and keys missing in the matched language.
func WithDefaultLanguage(tag language.Tag) Option {
	return func(t *Translator) {
		if tag != language.Und {
			t.defaultLang = tag
		}
	}
}

// WithLogger sets the logger for load and reload events. Discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// Translator holds flattened message catalogs keyed by language and dotted
// key ("validation.range.too_low"). Lookups are safe for concurrent use and
// may run while Reload swaps the catalogs.
type Translator struct {
	adapter     TranslationAdapter
	defaultLang language.Tag
	logger      *slog.Logger

	mu       sync.RWMutex
	messages map[string]map[string]string
	tags     []language.Tag // default language first
	matcher  language.Matcher
}

// NewTranslator loads the catalogs of adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		adapter:     adapter,
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	if err := t.load(ctx); err != nil {
		return nil, err
	}
	t.logger.InfoContext(ctx, "Message catalogs loaded", "languages", t.codes())
	return t, nil
}

// Reload reads the adapter again and swaps the catalogs in place.
// The old catalogs stay active when loading fails.
func (t *Translator) Reload(ctx context.Context) error {
	if err := t.load(ctx); err != nil {
		return errors.Join(ErrFailedToReload, err)
	}
	t.logger.InfoContext(ctx, "Message catalogs reloaded", "languages", t.codes())
	return nil
}

func (t *Translator) load(ctx context.Context) error {
	raw, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}

	messages, err := flattenCatalogs(raw)
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		t.logger.WarnContext(ctx, "No message catalogs provided")
	} else if _, ok := messages[t.defaultLang.String()]; !ok {
		t.logger.WarnContext(ctx, "Default language has no catalog", "lang", t.defaultLang.String())
	}

	// The matcher answers with its first tag when nothing matches.
	tags := []language.Tag{t.defaultLang}
	codes := make([]string, 0, len(messages))
	for code := range messages {
		if code != t.defaultLang.String() {
			codes = append(codes, code)
		}
	}
	slices.Sort(codes)
	for _, code := range codes {
		tags = append(tags, language.Make(code))
	}

	t.mu.Lock()
	t.messages = messages
	t.tags = tags
	t.matcher = language.NewMatcher(tags)
	t.mu.Unlock()
	return nil
}

// flattenCatalogs keys every catalog by canonical language code and every
// message by its dotted path. Catalogs whose codes name the same language
// are merged.
func flattenCatalogs(raw map[string]map[string]any) (map[string]map[string]string, error) {
	out := make(map[string]map[string]string, len(raw))
	for code, tree := range raw {
		tag, err := parseLanguage(code)
		if err != nil {
			return nil, err
		}
		if tree == nil {
			return nil, fmt.Errorf("%w: language %q has no messages", ErrInvalidCatalog, code)
		}

		key := tag.String()
		if out[key] == nil {
			out[key] = make(map[string]string)
		}
		if err := flatten("", tree, out[key]); err != nil {
			return nil, fmt.Errorf("language %q: %w", code, err)
		}
	}
	return out, nil
}

func flatten(prefix string, tree map[string]any, out map[string]string) error {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch v := v.(type) {
		case string:
			out[key] = v
		case nil:
			// An empty entry defines nothing.
		case bool, int, int64, uint64, float64:
			out[key] = fmt.Sprint(v)
		default:
			sub, ok := asTree(v)
			if !ok {
				return fmt.Errorf("%w: %q holds %T", ErrInvalidCatalog, key, v)
			}
			if err := flatten(key, sub, out); err != nil {
				return err
			}
		}
	}
	return nil
}

// DefaultLanguage returns the language configured with WithDefaultLanguage.
func (t *Translator) DefaultLanguage() language.Tag {
	return t.defaultLang
}

// Languages returns the catalog languages, default first and the rest sorted.
// The default language is listed even when it has no catalog.
func (t *Translator) Languages() []language.Tag {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.tags)
}

func (t *Translator) codes() []string {
	tags := t.Languages()
	codes := make([]string, len(tags))
	for i, tag := range tags {
		codes[i] = tag.String()
	}
	return codes
}

// Match returns the catalog language that best serves tag, so "en-GB" is
// served by "en". Unmatched tags get the default language.
func (t *Translator) Match(tag language.Tag) language.Tag {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.match(tag)
}

func (t *Translator) match(tag language.Tag) language.Tag {
	_, idx, _ := t.matcher.Match(tag)
	return t.tags[idx]
}

// Lookup returns the message stored under key for exactly the language tag.
func (t *Translator) Lookup(tag language.Tag, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.messages[tag.String()][key]
	return s, ok
}

// Text returns the message for key in the language matched for tag, falling
// back to the default language when the matched catalog lacks the key.
func (t *Translator) Text(tag language.Tag, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	matched := t.match(tag).String()
	if s, ok := t.messages[matched][key]; ok {
		return s, true
	}
	if def := t.defaultLang.String(); def != matched {
		s, ok := t.messages[def][key]
		return s, ok
	}
	return "", false
}

// Keys returns the sorted message keys of a language, or nil when it has no
// catalog.
func (t *Translator) Keys(tag language.Tag) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	msgs, ok := t.messages[tag.String()]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(msgs))
	for k := range msgs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
