package validator

import (
	"slices"
	"sync"
)

// Registry maps constraint kinds to validators.
// A kind is bound once: later registrations for the same kind are ignored.
// Registry is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	validators map[Kind]Validator
}

// NewRegistry returns a registry pre-populated with the built-in validators.
func NewRegistry() *Registry {
	return &Registry{validators: builtins()}
}

func builtins() map[Kind]Validator {
	return map[Kind]Validator{
		KindNotNull:   ValidatorFunc(validateNotNull),
		KindNotBlank:  ValidatorFunc(validateNotBlank),
		KindRange:     ValidatorFunc(validateRange),
		KindDecimal:   ValidatorFunc(validateDecimal),
		KindID:        ValidatorFunc(validateID),
		KindLength:    ValidatorFunc(validateLength),
		KindSize:      ValidatorFunc(validateSize),
		KindPattern:   ValidatorFunc(validatePattern),
		KindCharset:   ValidatorFunc(validateCharset),
		KindCase:      ValidatorFunc(validateCase),
		KindPassword:  ValidatorFunc(validatePassword),
		KindEmail:     ValidatorFunc(validateEmail),
		KindUUID:      ValidatorFunc(validateUUID),
		KindOneOf:     ValidatorFunc(validateOneOf),
		KindDate:      ValidatorFunc(validateDate),
		KindAge:       ValidatorFunc(validateAge),
		KindPredicate: repeatable{ValidatorFunc(validateExtension)},
		KindExists:    repeatable{ValidatorFunc(validateExtension)},
	}
}

// Register binds kind to v. It reports false and changes nothing when v is
// nil or kind is already bound.
func (r *Registry) Register(kind Kind, v Validator) bool {
	if v == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.validators[kind]; ok {
		return false
	}
	r.validators[kind] = v
	return true
}

// Resolve returns the validator bound to kind. A kind without a validator is
// inert: sessions skip constraints of that kind.
func (r *Registry) Resolve(kind Kind) (Validator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.validators[kind]
	return v, ok
}

// Kinds lists the bound kinds in sorted order.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]Kind, 0, len(r.validators))
	for k := range r.validators {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide registry used by sessions that
// were not given one.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}
