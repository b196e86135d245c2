// Package overview serves the landing dashboard, the health probe, the
// drilldown endpoint, and the shared not-found fallback.
package overview

import (
	"net/http"

	module "github.com/sofealabs/impactboard/internal/services/web/module"
	"github.com/sofealabs/impactboard/internal/services/web/routepath"
)

// Module provides the overview routes mounted at the site root.
type Module struct{}

// New returns an overview module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "overview" }

// Mount wires overview route handlers. The drilldown resolver is built here,
// at chart-construction time, so every rendered element already has a target.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	svc, err := newService(deps.Store)
	if err != nil {
		return module.Mount{}, err
	}
	mux := http.NewServeMux()
	registerRoutes(mux, handlers{service: svc})
	return module.Mount{Prefixes: []string{routepath.Root}, Handler: mux}, nil
}
