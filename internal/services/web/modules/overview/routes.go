package overview

import (
	"net/http"

	"github.com/sofealabs/impactboard/internal/services/web/platform/httpx"
	"github.com/sofealabs/impactboard/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" /{$}", h.handleRoot)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc(http.MethodGet+" "+routepath.Overview, h.handleOverview)
	mux.HandleFunc(http.MethodGet+" "+routepath.OverviewDrilldown, h.handleDrilldown)
	mux.Handle(routepath.Overview, httpx.MethodNotAllowed(http.MethodGet))
	mux.Handle(routepath.OverviewDrilldown, httpx.MethodNotAllowed(http.MethodGet))

	// Unclaimed paths fall through to the shared not-found page.
	mux.HandleFunc("/{rest...}", h.handleNotFound)
}
