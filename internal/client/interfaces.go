// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"io"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front end the client runs, e.g. [tui.TUI].
type UI interface {
	Run(ctx context.Context) error
}

// Closer is anything the app has to release on exit, such as the local
// session database.
type Closer = io.Closer
