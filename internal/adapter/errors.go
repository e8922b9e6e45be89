package adapter

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// APIError is a non-2xx answer of the API. Fields holds the field-keyed
// body, e.g. {"email":"Email already exists"}, when the server sent one.
type APIError struct {
	Status int
	Fields map[string]string

	kind error
}

func (e *APIError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s (http %d)", e.kind, e.Status)
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e.Fields[k])
	}
	return strings.Join(parts, "; ")
}

// Unwrap lets errors.Is match the status sentinel, e.g. [ErrNotFound].
func (e *APIError) Unwrap() error {
	return e.kind
}

// FieldErrors returns the field-keyed body carried by err, if any.
func FieldErrors(err error) (map[string]string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && len(apiErr.Fields) > 0 {
		return apiErr.Fields, true
	}
	return nil, false
}

// HasField reports whether err carries a body with key, e.g. "alreadyliked".
func HasField(err error, key string) bool {
	fields, ok := FieldErrors(err)
	if !ok {
		return false
	}
	_, ok = fields[key]
	return ok
}
