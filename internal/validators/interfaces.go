// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach storage.
//
// Every validator collects all problems it finds into a [FieldErrors] map
// keyed by the JSON field name, which the HTTP layer returns verbatim with
// status 400 so clients can show each message next to its input.
//
// Callers may restrict validation to a subset of fields by passing field
// names (the Field* constants) to Validate.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
