// Package programs serves the four sub-program dashboard pages.
package programs

import (
	"fmt"
	"net/http"

	module "github.com/sofealabs/impactboard/internal/services/web/module"
	"github.com/sofealabs/impactboard/internal/services/web/routepath"
)

// Module provides the AIS, EIS, HIS, and SIS pages.
type Module struct{}

// New returns a programs module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "programs" }

// Mount wires one handler behind all four program paths.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Store == nil {
		return module.Mount{}, fmt.Errorf("programs: store is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, handlers{service: service{store: deps.Store}})
	return module.Mount{
		Prefixes: []string{routepath.AIS, routepath.EIS, routepath.HIS, routepath.SIS},
		Handler:  mux,
	}, nil
}
