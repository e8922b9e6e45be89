package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation matches any [FieldErrors] via errors.Is.
	ErrValidation = errors.New("validation failed")
)

// FieldErrors maps a request field name to a human-readable message,
// e.g. {"email": "Email is invalid"}.
type FieldErrors map[string]string

// Error joins all messages in field order.
func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return strings.Join(parts, "; ")
}

// Is reports whether target is [ErrValidation].
func (e FieldErrors) Is(target error) bool {
	return target == ErrValidation
}

// add records msg for field unless the field already has a message, so the
// first failed rule of a field wins.
func (e FieldErrors) add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// errOrNil returns e as an error when it holds at least one message.
func (e FieldErrors) errOrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
