package templates

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/sofealabs/impactboard/internal/services/web/platform/i18n"
	"github.com/sofealabs/impactboard/internal/services/web/routepath"
)

// ErrorState renders the body of an error page for the given status.
func ErrorState(status int, copy i18n.Copy) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		heading, message := copy.HeadingError, copy.MessageError
		if status == http.StatusNotFound {
			heading, message = copy.HeadingNotFound, copy.MessageNotFound
		}
		_, err := fmt.Fprintf(w,
			`<section class="error-state"><h1>%s</h1><p>%s</p><p><a href="%s">%s</a></p></section>`,
			html.EscapeString(heading),
			html.EscapeString(message),
			routepath.Overview,
			html.EscapeString(copy.BackToOverview),
		)
		return err
	})
}

// ErrorPageTitle is the document title for an error response.
func ErrorPageTitle(status int, copy i18n.Copy) string {
	if status == http.StatusNotFound {
		return copy.TitleNotFound
	}
	return copy.HeadingError
}
