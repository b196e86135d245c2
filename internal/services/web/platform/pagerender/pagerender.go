// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/sofealabs/impactboard/internal/services/web/platform/httpx"
	webi18n "github.com/sofealabs/impactboard/internal/services/web/platform/i18n"
	webtemplates "github.com/sofealabs/impactboard/internal/services/web/templates"
)

// Page describes a full dashboard page response.
type Page struct {
	Title      string
	StatusCode int
	// Path marks the active navigation entry.
	Path     string
	Fragment templ.Component
}

// WritePage writes a dashboard page inside the shared app shell.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = templ.NopComponent
	}

	copy, lang := webi18n.Resolve(r)
	ctx := httpx.RequestContext(r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	layout := webtemplates.AppLayout(page.Title, lang, page.Path, copy)
	return layout.Render(templ.WithChildren(ctx, fragment), w)
}
