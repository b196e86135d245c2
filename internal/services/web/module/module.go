// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"

	"github.com/sofealabs/impactboard/internal/impact"
)

// Dependencies carries the shared services required to compose web modules.
// The store is the only stateful collaborator; it is immutable after startup
// so modules may read it without synchronization.
type Dependencies struct {
	Store *impact.Store
}

// Mount describes a module route mount. A module may claim several path
// prefixes; the same handler serves all of them.
type Mount struct {
	Prefixes []string
	Handler  http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
