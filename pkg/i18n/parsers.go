package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Parser decodes one catalog document. The top level of a document is keyed
// by BCP 47 language code and every language holds a tree of messages:
//
//	en:
//	  validation:
//	    range:
//	      too_low: "%FIELD% must be at least %MIN%"
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)
	// Supports reports whether a file or object name has one of the
	// parser's extensions.
	Supports(name string) bool
}

type format struct {
	name       string
	extensions []string
	unmarshal  func([]byte, any) error
}

// NewYAMLParser returns the parser for .yaml and .yml catalogs.
func NewYAMLParser() Parser {
	return format{name: "yaml", extensions: []string{"yaml", "yml"}, unmarshal: yaml.Unmarshal}
}

// NewJSONParser returns the parser for .json catalogs.
func NewJSONParser() Parser {
	return format{name: "json", extensions: []string{"json"}, unmarshal: json.Unmarshal}
}

// NewParserForFile picks a parser by extension, or returns nil.
func NewParserForFile(name string) Parser {
	for _, p := range []Parser{NewYAMLParser(), NewJSONParser()} {
		if p.Supports(name) {
			return p
		}
	}
	return nil
}

func (f format) Supports(name string) bool {
	ext := strings.TrimPrefix(path.Ext(name), ".")
	if ext == "" {
		return false
	}
	return slices.ContainsFunc(f.extensions, func(e string) bool {
		return strings.EqualFold(e, ext)
	})
}

func (f format) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	var doc map[string]any
	if err := f.unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParseFailed, f.name, err)
	}
	return catalogsOf(doc)
}

// catalogsOf checks the language level of a decoded document.
func catalogsOf(doc map[string]any) (map[string]map[string]any, error) {
	if len(doc) == 0 {
		return nil, fmt.Errorf("%w: no languages", ErrInvalidCatalog)
	}

	out := make(map[string]map[string]any, len(doc))
	for code, v := range doc {
		if _, err := parseLanguage(code); err != nil {
			return nil, err
		}
		tree, ok := asTree(v)
		if !ok {
			return nil, fmt.Errorf("%w: language %q holds %T, want a map of messages", ErrInvalidCatalog, code, v)
		}
		out[code] = tree
	}
	return out, nil
}

func parseLanguage(code string) (language.Tag, error) {
	if code == "" {
		return language.Und, fmt.Errorf("%w: empty code", ErrInvalidLanguage)
	}
	tag, err := language.Parse(code)
	if err != nil {
		return language.Und, fmt.Errorf("%w %q: %w", ErrInvalidLanguage, code, err)
	}
	return tag, nil
}

// asTree accepts both map forms decoders produce for a mapping.
func asTree(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[fmt.Sprint(k)] = v
		}
		return out, true
	default:
		return nil, false
	}
}
