package validator

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"time"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/fieldcheck/pkg/logger"
)

// Option configures a Session.
type Option func(*sessionOptions)

type sessionOptions struct {
	locale   language.Tag
	pushy    bool
	registry *Registry
	messages Messages
	log      *slog.Logger
}

// WithLocale sets the locale of violation messages and log lines.
func WithLocale(tag language.Tag) Option {
	return func(o *sessionOptions) { o.locale = tag }
}

// WithPushy controls whether validation keeps going after the first
// violation (true, the default) or stops there.
func WithPushy(pushy bool) Option {
	return func(o *sessionOptions) { o.pushy = pushy }
}

// WithRegistry replaces the default registry. Nil is ignored.
func WithRegistry(r *Registry) Option {
	return func(o *sessionOptions) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithMessages replaces the default message catalog. Nil is ignored.
func WithMessages(m Messages) Option {
	return func(o *sessionOptions) {
		if m != nil {
			o.messages = m
		}
	}
}

// WithLogger sets the logger for debug traces. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *sessionOptions) {
		if l != nil {
			o.log = l
		}
	}
}

// WithConfig applies the locale and pushy settings of cfg.
func WithConfig(cfg Config) Option {
	return func(o *sessionOptions) {
		o.locale = cfg.Locale()
		o.pushy = cfg.Pushy
	}
}

// Session validates one target against a schema.
//
// The setters are not synchronized: configure a session before sharing it, or
// create one session per goroutine. Validators, registries and catalogs are
// shared safely between sessions.
type Session[T any] struct {
	schema   *Schema[T]
	target   T
	locale   language.Tag
	pushy    bool
	registry *Registry
	messages Messages
	log      *slog.Logger
}

// NewSession binds schema to target. By default a session is pushy, speaks
// English, uses DefaultRegistry and DefaultCatalog and does not log.
func NewSession[T any](schema *Schema[T], target T, opts ...Option) *Session[T] {
	o := &sessionOptions{
		locale: language.English,
		pushy:  true,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.registry == nil {
		o.registry = DefaultRegistry()
	}
	if o.messages == nil {
		o.messages = DefaultCatalog()
	}
	if o.log == nil {
		o.log = logger.Discard()
	}
	if schema == nil {
		schema = NewSchema[T]()
	}

	return &Session[T]{
		schema:   schema,
		target:   target,
		locale:   o.locale,
		pushy:    o.pushy,
		registry: o.registry,
		messages: o.messages,
		log:      o.log,
	}
}

func (s *Session[T]) Locale() language.Tag {
	return s.locale
}

// SetLocale switches the language of later messages and log lines.
// Setting the current locale again does nothing.
func (s *Session[T]) SetLocale(tag language.Tag) {
	if tag == s.locale {
		return
	}
	previous := s.locale
	s.locale = tag
	s.debug(context.Background(), "log.locale.changed", slog.String("previous", previous.String()))
}

func (s *Session[T]) IsPushy() bool {
	return s.pushy
}

func (s *Session[T]) SetPushy(pushy bool) {
	s.pushy = pushy
}

// Validate runs ValidateContext with a background context.
func (s *Session[T]) Validate() (Violations, error) {
	return s.ValidateContext(context.Background())
}

// ValidateContext checks every constraint of every field in schema order
// and returns the violations found.
//
// A non-pushy session returns after the first violation. A configuration
// error (see ConfigError) or a cancelled context aborts validation; the
// error is returned with nil violations.
func (s *Session[T]) ValidateContext(ctx context.Context) (Violations, error) {
	start := time.Now()
	s.debug(ctx, "log.session.start", logger.Count(s.schema.Len()))

	var violations Violations
	for _, f := range s.schema.fields {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var stopped bool
		var err error
		violations, stopped, err = s.validateField(ctx, f, violations)
		if err != nil {
			return nil, s.localizeError(err)
		}
		if stopped {
			s.debug(ctx, "log.session.stop", logger.Field(f.field.Name))
			return violations, nil
		}
	}

	s.debug(ctx, "log.session.done", logger.Count(len(violations)), logger.Duration(time.Since(start)))
	return violations, nil
}

// validateField appends the field's violations to out and reports whether
// a non-pushy session must stop.
func (s *Session[T]) validateField(ctx context.Context, f FieldSpec[T], out Violations) (Violations, bool, error) {
	value, raw := f.read(s.target)
	field := f.field
	field.raw = raw

	var failedKinds map[Kind]bool
	for _, c := range f.constraints {
		v, ok := s.registry.Resolve(c.Kind())
		if !ok {
			s.debug(ctx, "log.constraint.inert", logger.Field(f.field.Name), logger.ConstraintKind(string(c.Kind())))
			continue
		}

		repeat := isRepeatable(v)
		if repeat && failedKinds[c.Kind()] {
			continue
		}

		result, err := v.Validate(ctx, field, value, c)
		if err != nil {
			return out, false, err
		}
		if result == nil {
			continue
		}

		if repeat {
			if failedKinds == nil {
				failedKinds = make(map[Kind]bool)
			}
			failedKinds[c.Kind()] = true
		}

		out = append(out, s.violation(f.field, c, result))
		s.debug(ctx, "log.violation",
			logger.Field(f.field.Name),
			logger.ConstraintKind(string(c.Kind())),
			logger.Reason(result.Reason),
		)

		if !s.pushy {
			return out, true, nil
		}
	}
	return out, false, nil
}

func (s *Session[T]) violation(field Field, c Constraint, f *Failure) Violation {
	params := maps.Clone(f.Params)
	if params == nil {
		params = make(map[string]any, 1)
	}
	if _, ok := params[ParamField]; !ok {
		params[ParamField] = field.Name
	}

	return Violation{
		Field:   field.Name,
		Message: Render(c.Message(), s.text("validation."+f.Reason), params),
		Params:  params,
	}
}

// localizeError fills in the localized description of a ConfigError.
func (s *Session[T]) localizeError(err error) error {
	var ce *ConfigError
	if !errors.As(err, &ce) || ce.Message != "" {
		return err
	}
	if tmpl := s.messages.Lookup(s.locale, ce.code()); tmpl != "" {
		ce.Message = Render(tmpl, "", ce.params())
	}
	return err
}

// text returns the localized text of code, or the code itself.
func (s *Session[T]) text(code string) string {
	if t := s.messages.Lookup(s.locale, code); t != "" {
		return t
	}
	return code
}

func (s *Session[T]) debug(ctx context.Context, code string, attrs ...slog.Attr) {
	if !s.log.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs = append(attrs, logger.Component("validator"), logger.Locale(s.locale.String()))
	s.log.LogAttrs(ctx, slog.LevelDebug, s.text(code), attrs...)
}

// Validate is a shorthand for NewSession(schema, target, opts...).ValidateContext(ctx).
func Validate[T any](ctx context.Context, schema *Schema[T], target T, opts ...Option) (Violations, error) {
	return NewSession(schema, target, opts...).ValidateContext(ctx)
}
