package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/coocood/freecache"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

// minSize is the smallest cache freecache allows.
const minSize = 512 * 1024

// Existence memoizes the answers of another existence check, so that
// repeated validation of the same value does not hit the database or Redis
// again. Lookup errors are never cached.
type Existence[V any] struct {
	next  validator.Existence[V]
	store *freecache.Cache
	ttl   int
}

// NewExistence wraps next with a cache of size bytes whose entries expire
// after ttl. A ttl of zero keeps entries until they are evicted.
// Values are keyed by their dynamic type and Go-syntax (%#v) form, so
// values that print alike but differ in type or structure get separate
// entries. Pointers are keyed by address: an answer cached for a pointer
// is not refreshed when the pointed-to value changes.
func NewExistence[V any](next validator.Existence[V], size int, ttl time.Duration) *Existence[V] {
	if next == nil {
		panic("cache: nil existence check")
	}

	seconds := int(ttl / time.Second)
	if ttl > 0 && seconds == 0 {
		seconds = 1
	}

	return &Existence[V]{
		next:  next,
		store: freecache.NewCache(max(size, minSize)),
		ttl:   seconds,
	}
}

func (e *Existence[V]) Exists(ctx context.Context, value V) (bool, error) {
	key := cacheKey(value)
	if cached, err := e.store.Get(key); err == nil && len(cached) == 1 {
		return cached[0] == 1, nil
	}

	ok, err := e.next.Exists(ctx, value)
	if err != nil {
		return false, err
	}

	flag := []byte{0}
	if ok {
		flag[0] = 1
	}
	// A key too large for the cache is simply not cached.
	_ = e.store.Set(key, flag, e.ttl)
	return ok, nil
}

// Forget drops the cached answer for value and reports whether there was one.
func (e *Existence[V]) Forget(value V) bool {
	return e.store.Del(cacheKey(value))
}

// Clear drops every cached answer.
func (e *Existence[V]) Clear() {
	e.store.Clear()
}

// Len is the number of cached answers.
func (e *Existence[V]) Len() int64 {
	return e.store.EntryCount()
}

func cacheKey[V any](value V) []byte {
	return fmt.Appendf(nil, "%T:%#v", value, value)
}

var _ validator.Existence[string] = (*Existence[string])(nil)
