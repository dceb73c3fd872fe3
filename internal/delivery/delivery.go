// Package delivery defines the contract shared by every entry point of the
// application (HTTP server, scheduler).
package delivery

import "context"

// Delivery is a long-running entry point started by the application
// container. Serve blocks until the delivery stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
