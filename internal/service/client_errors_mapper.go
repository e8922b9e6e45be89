// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/dev-connector/internal/adapter"
	"github.com/MKhiriev/dev-connector/internal/app"
	"github.com/MKhiriev/dev-connector/internal/store"
	"github.com/MKhiriev/dev-connector/internal/validators"
)

// clientErrorKeys maps the keys of error bodies to the business error the
// client reacts to. Keys not listed here are form field errors.
var clientErrorKeys = map[string]error{
	app.KeyNotAuthorized:   ErrNotPostOwner,
	app.KeyNoProfile:       store.ErrProfileNotFound,
	app.KeyNoPostsFound:    store.ErrPostNotFound,
	app.KeyNoPostFound:     store.ErrPostNotFound,
	app.KeyPostNotFound:    store.ErrPostNotFound,
	app.KeyAlreadyLiked:    store.ErrAlreadyLiked,
	app.KeyNotLiked:        store.ErrNotLiked,
	app.KeyCommentNotExist: store.ErrCommentNotFound,
	app.KeyExperience:      store.ErrExperienceNotFound,
	app.KeyEducation:       store.ErrEducationNotFound,
}

// mapAdapterError translates the adapter's transport error into a service
// business error. The server's message is kept in the error text so the UI
// can show it as is.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *adapter.APIError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %v", ErrServerUnavailable, err)
	}

	for key, msg := range apiErr.Fields {
		if target, ok := clientErrorKeys[key]; ok {
			return fmt.Errorf("%w: %s", target, msg)
		}
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrSessionExpired

	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrNotFound):
		if msg, ok := apiErr.Fields[app.KeyError]; ok {
			return fmt.Errorf("%w: %s", ErrUnexpectedResponse, msg)
		}
		if len(apiErr.Fields) > 0 {
			return validators.FieldErrors(apiErr.Fields)
		}
	}

	return fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
}
