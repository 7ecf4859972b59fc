package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records a validated field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// ConstraintKind records a constraint kind under the key "constraint".
func ConstraintKind(kind string) slog.Attr {
	return slog.String("constraint", kind)
}

// Reason records a failure reason code under the key "reason".
// An empty reason returns an empty Attr.
func Reason(code string) slog.Attr {
	if code == "" {
		return slog.Attr{}
	}
	return slog.String("reason", code)
}

// Locale records a BCP 47 language tag under the key "locale".
func Locale(tag string) slog.Attr {
	return slog.String("locale", tag)
}

// Count records a count under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
