// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNilHandlers         = errors.New("handlers are nil")
	errNoServersAreCreated = errors.New("no servers are created")
)
