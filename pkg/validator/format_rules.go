package validator

import (
	"context"
	"net/mail"
	"strings"

	"github.com/google/uuid"
)

// Email requires a bare address in RFC 5322 form with a dotted domain.
// Display names ("Bob <bob@example.com>") are rejected.
func Email() Constraint {
	return Constraint{kind: KindEmail, message: DefaultMessage}
}

// UUID requires a parsable, non-nil UUID. Accepts strings and uuid.UUID.
func UUID() Constraint {
	return Constraint{kind: KindUUID, message: DefaultMessage}
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Name != "" || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

func validateEmail(_ context.Context, field Field, value any, c Constraint) (*Failure, error) {
	if value == nil {
		return nil, nil
	}

	s, ok := asString(value)
	if !ok {
		return nil, UnsupportedType(field, c, value)
	}
	if !isEmail(s) {
		return failure(field, c, "email.invalid"), nil
	}
	return nil, nil
}

func validateUUID(_ context.Context, field Field, value any, c Constraint) (*Failure, error) {
	if value == nil {
		return nil, nil
	}

	var id uuid.UUID
	switch v := value.(type) {
	case uuid.UUID:
		id = v
	default:
		s, ok := asString(value)
		if !ok {
			return nil, UnsupportedType(field, c, value)
		}
		// Fast rejection before parsing: canonical form only.
		if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
			return failure(field, c, "uuid.invalid"), nil
		}
		parsed, err := uuid.Parse(s)
		if err != nil {
			return failure(field, c, "uuid.invalid"), nil
		}
		id = parsed
	}

	if id == uuid.Nil {
		return failure(field, c, "uuid.invalid"), nil
	}
	return nil, nil
}
