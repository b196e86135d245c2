// Package errors defines web typed application errors.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindNotFound     Kind = "not_found"
	// KindUnresolvedDrilldown marks a chart click with no mapped target.
	// It is swallowed at the drilldown boundary, never shown to the user.
	KindUnresolvedDrilldown Kind = "unresolved_drilldown"
)

// Error is a typed web application failure.
type Error struct {
	Kind    Kind
	Key     string
	Message string
}

// Error renders the human-readable message.
func (e Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

// E builds a typed Error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// EK builds a typed Error with a localization key.
func EK(kind Kind, key string, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// KindOf returns the classification for an error, KindUnknown when untyped.
func KindOf(err error) Kind {
	if err == nil {
		return Kind("")
	}
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return KindUnknown
	}
	return appErr.Kind
}

// LocalizationKey returns the structured localization key when available.
func LocalizationKey(err error) string {
	if err == nil {
		return ""
	}
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return ""
	}
	return strings.TrimSpace(appErr.Key)
}

// HTTPStatus maps an error to an HTTP status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnresolvedDrilldown:
		// No navigation happens for stray clicks; the handler answers with
		// an empty response rather than an error page.
		return http.StatusNoContent
	default:
		return http.StatusInternalServerError
	}
}
