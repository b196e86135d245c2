// Package awardees serves the explorer list and the detail drilldown target.
package awardees

import (
	"fmt"
	"net/http"

	module "github.com/sofealabs/impactboard/internal/services/web/module"
	"github.com/sofealabs/impactboard/internal/services/web/routepath"
)

// Module provides the awardee explorer and detail pages.
type Module struct{}

// New returns an awardees module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "awardees" }

// Mount wires explorer and detail route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Store == nil {
		return module.Mount{}, fmt.Errorf("awardees: store is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, handlers{service: service{store: deps.Store}})
	return module.Mount{
		Prefixes: []string{routepath.Awardees, routepath.AwardeePrefix},
		Handler:  mux,
	}, nil
}
