package programs

import (
	"errors"
	"net/http"

	"github.com/sofealabs/impactboard/internal/impact"
	webi18n "github.com/sofealabs/impactboard/internal/services/web/platform/i18n"
	"github.com/sofealabs/impactboard/internal/services/web/platform/pagerender"
	"github.com/sofealabs/impactboard/internal/services/web/platform/weberror"
	"github.com/sofealabs/impactboard/internal/services/web/templates"
)

type handlers struct {
	service service
}

func (h handlers) handleProgram(id impact.ProgramID) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		copy, _ := webi18n.Resolve(r)
		data, err := h.service.page(id, copy)
		if err != nil {
			if errors.Is(err, impact.ErrNotFound) {
				weberror.WriteAppError(w, r, http.StatusNotFound)
				return
			}
			weberror.WriteAppError(w, r, http.StatusInternalServerError)
			return
		}
		fragment := templates.Join(
			templates.PageHeading(title(id, copy)),
			templates.Panel(templates.BarChartSVG(data.Chart)),
			templates.Panel(templates.SeriesChartSVG(data.Program.Name, data.Trend)),
			templates.Panel(templates.DataTable(data.Headers, data.Rows)),
		)
		page := pagerender.Page{
			Title:    title(id, copy),
			Path:     data.PagePath,
			Fragment: fragment,
		}
		if err := pagerender.WritePage(w, r, page); err != nil {
			weberror.WriteAppError(w, r, http.StatusInternalServerError)
		}
	}
}
