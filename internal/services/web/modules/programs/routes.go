package programs

import (
	"net/http"

	"github.com/sofealabs/impactboard/internal/impact"
	"github.com/sofealabs/impactboard/internal/services/web/platform/httpx"
	"github.com/sofealabs/impactboard/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	for _, id := range impact.ProgramIDs() {
		path := routepath.Program(id)
		mux.Handle(http.MethodGet+" "+path, h.handleProgram(id))
		mux.Handle(path, httpx.MethodNotAllowed(http.MethodGet))
	}
}
