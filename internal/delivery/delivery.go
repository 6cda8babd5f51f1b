// Package delivery defines the contract every transport adapter satisfies,
// so the composition root can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport (an HTTP server) managed by the
// application lifecycle. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
