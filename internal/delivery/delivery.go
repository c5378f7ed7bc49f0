// Package delivery defines the contract shared by the transport servers
// wired through fx.
package delivery

import "context"

// Delivery is a long-running transport endpoint (e.g., an HTTP server).
// Serve blocks until the server stops; shutdown happens through the fx
// lifecycle hooks registered by the implementation.
type Delivery interface {
	Serve(ctx context.Context) error
}
