package awardees

import (
	"net/http"

	"github.com/sofealabs/impactboard/internal/services/web/platform/httpx"
	"github.com/sofealabs/impactboard/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Awardees, h.handleExplorer)
	mux.Handle(routepath.Awardees, httpx.MethodNotAllowed(http.MethodGet))

	mux.HandleFunc(http.MethodGet+" "+routepath.AwardeePattern, h.handleDetail)
	mux.HandleFunc(http.MethodGet+" "+routepath.AwardeePrefix+"{$}", h.handleNotFound)
	mux.HandleFunc(http.MethodGet+" "+routepath.AwardeeRestPattern, h.handleNotFound)
	mux.Handle(routepath.AwardeePrefix, httpx.MethodNotAllowed(http.MethodGet))
}
