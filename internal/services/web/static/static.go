// Package static embeds the dashboard's stylesheet and serves it over HTTP.
package static

import (
	"embed"
	"net/http"
)

//go:embed app.css
var files embed.FS

// Handler serves embedded static assets. Mount it under the static prefix
// with http.StripPrefix.
func Handler() http.Handler {
	return http.FileServer(http.FS(files))
}
