// Package delivery defines the contract every transport server fulfills so
// the fx graph can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport server (HTTP today).
type Delivery interface {
	Serve(ctx context.Context) error
}
