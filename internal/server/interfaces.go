// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the API server.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT, then shuts down
	// gracefully.
	RunServer()

	// Run serves until ctx is done or serving fails. A clean shutdown
	// returns nil.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}
