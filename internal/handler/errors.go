// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHTTPAddress is returned by NewHandlers when the server configuration
// has no HTTP address. The REST API is the product; the gRPC health endpoint
// alone is a misconfiguration.
var errNoHTTPAddress = errors.New("no http address configured")
