// Package weberror renders shared app-shell error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	apperrors "github.com/sofealabs/impactboard/internal/services/web/platform/errors"
	webi18n "github.com/sofealabs/impactboard/internal/services/web/platform/i18n"
	"github.com/sofealabs/impactboard/internal/services/web/platform/pagerender"
	webtemplates "github.com/sofealabs/impactboard/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe error message.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := strings.TrimSpace(http.StatusText(statusCode)); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes a full error page for the given status.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	copy, _ := webi18n.Resolve(r)
	page := pagerender.Page{
		Title:      webtemplates.ErrorPageTitle(statusCode, copy),
		StatusCode: statusCode,
		Fragment:   webtemplates.ErrorState(statusCode, copy),
	}
	if err := pagerender.WritePage(w, r, page); err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError maps a typed error onto the right response shape.
// Unresolved drilldown clicks answer 204 with no body so the client
// stays on the current page.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode == http.StatusNoContent {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode)
		return
	}
	http.Error(w, PublicMessage(err), statusCode)
}
