package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

// SetMember checks values against the members of one Redis set, e.g. a set of
// allowed country codes or of registered usernames.
// It implements validator.Existence[string].
type SetMember struct {
	client redis.UniversalClient
	key    string
}

// NewSetMember returns an existence check against the set stored at key.
func NewSetMember(client redis.UniversalClient, key string) *SetMember {
	return &SetMember{client: client, key: key}
}

// Key is the key of the set.
func (s *SetMember) Key() string {
	return s.key
}

func (s *SetMember) Exists(ctx context.Context, value string) (bool, error) {
	ok, err := s.client.SIsMember(ctx, s.key, value).Result()
	if err != nil {
		return false, errors.Join(ErrExistenceCheckFailed, err)
	}
	return ok, nil
}

// KeyExists checks that prefix+value is an existing key, e.g. "invite:" and
// an invite code. It implements validator.Existence[string].
type KeyExists struct {
	client redis.UniversalClient
	prefix string
}

// NewKeyExists returns an existence check for keys named prefix+value.
func NewKeyExists(client redis.UniversalClient, prefix string) *KeyExists {
	return &KeyExists{client: client, prefix: prefix}
}

func (k *KeyExists) Exists(ctx context.Context, value string) (bool, error) {
	n, err := k.client.Exists(ctx, k.prefix+value).Result()
	if err != nil {
		return false, errors.Join(ErrExistenceCheckFailed, err)
	}
	return n > 0, nil
}

var (
	_ validator.Existence[string] = (*SetMember)(nil)
	_ validator.Existence[string] = (*KeyExists)(nil)
)
