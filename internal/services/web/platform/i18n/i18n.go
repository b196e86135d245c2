// Package i18n resolves request language and dashboard copy for web handlers.
package i18n

import (
	"net/http"

	"golang.org/x/text/language"
)

var supported = []language.Tag{
	language.AmericanEnglish,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supported)

// DefaultTag is the fallback language for unmatched requests.
var DefaultTag = language.AmericanEnglish

// ResolveTag determines the best supported language tag for the request.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return DefaultTag
	}
	header := r.Header.Get("Accept-Language")
	if header == "" {
		return DefaultTag
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultTag
	}
	_, index, _ := matcher.Match(tags...)
	return supported[index]
}

// Resolve returns the dashboard copy and the html lang attribute for a request.
func Resolve(r *http.Request) (Copy, string) {
	tag := ResolveTag(r)
	return Dashboard(tag), tag.String()
}
