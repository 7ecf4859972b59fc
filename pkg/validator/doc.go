// Package validator is a declarative field-constraint validation engine.
//
// Callers describe the fields of a type with a Schema, attach Constraint
// values to each field and run a Session against a target value. The session
// resolves every constraint's kind to a Validator through a Registry, runs it
// against the field's current value and collects a Violation for each failed
// check, with a localized, parameterized message.
//
// # Architecture
//
// Core building blocks:
//   - Schema and FieldOf declare fields, their getters and constraints in a
//     fixed order; results follow that order
//   - Constraint is immutable metadata: a Kind, named parameters and a
//     message template
//   - Validator is a pure function of (field, value, constraint) returning a
//     Failure, nothing, or a fatal error
//   - Registry binds kinds to validators; the first binding of a kind wins
//   - Session walks the schema, renders messages and logs its progress
//   - Messages and Catalog resolve reason codes to localized text
//
// Built-in validators share one pattern: an absent value (nil pointer, nil
// slice or map) is valid unless the constraint is NotNull; the runtime type is
// checked against an allow-list; the value is normalized (all integer kinds
// to int64, strings to NFC characters, collections to their length) and one
// check decides the outcome.
//
// # Usage
//
//	schema := validator.NewSchema(
//	    validator.FieldOf("name", func(u User) string { return u.Name },
//	        validator.NotBlank(),
//	        validator.Length(3, 13),
//	    ),
//	    validator.FieldOf("age", func(u User) int { return u.Age },
//	        validator.Range(18, 120).WithMessage("%FIELD% must be between %MIN% and %MAX%"),
//	    ),
//	    validator.FieldOf("username", func(u User) string { return u.Username },
//	        validator.Exists[string](usernames),
//	    ),
//	)
//
//	violations, err := validator.Validate(ctx, schema, user,
//	    validator.WithLocale(language.Russian),
//	    validator.WithLogger(log),
//	)
//	if err != nil {
//	    // the schema is broken: unsupported type or failing extension
//	}
//	if err := violations.Err(); err != nil {
//	    // bubble the violations up as an error
//	}
//
// # Messages
//
// A message template may contain %NAME% placeholders for the violation's
// parameters (FIELD always, plus MIN, MAX, PATTERN and so on depending on the
// kind) and the %DEFAULT_MESSAGE% token, which stands for the localized text
// of the specific failure reason. The default template is just
// %DEFAULT_MESSAGE%. Unknown placeholders are left in place.
//
// Localized texts live in catalogs keyed by code: validation.<reason> for
// violations, log.<event> for debug log lines and error.<kind> for
// configuration errors. DefaultCatalog embeds English and Russian; NewCatalog
// and LoadCatalog accept any i18n adapter (directory, embedded FS, S3).
//
// # Errors
//
// Violations describe bad data and are returned as a list. A ConfigError
// describes a broken schema: a constraint on a field of the wrong type
// (ErrUnsupportedFieldType) or a predicate or existence check that is
// missing, fails or panics (ErrInvalidExtension). It aborts validation and is
// returned as the error, with no violations.
//
// # Concurrency
//
// Validators, registries and catalogs are safe for concurrent use. A Session
// holds mutable settings; share it only after configuring it, or create one
// per goroutine.
package validator
