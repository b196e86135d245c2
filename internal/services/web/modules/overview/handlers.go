package overview

import (
	"net/http"

	webi18n "github.com/sofealabs/impactboard/internal/services/web/platform/i18n"
	"github.com/sofealabs/impactboard/internal/services/web/platform/pagerender"
	"github.com/sofealabs/impactboard/internal/services/web/platform/weberror"
	"github.com/sofealabs/impactboard/internal/services/web/routepath"
	"github.com/sofealabs/impactboard/internal/services/web/templates"
)

type handlers struct {
	service service
}

func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routepath.Overview, http.StatusFound)
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h handlers) handleOverview(w http.ResponseWriter, r *http.Request) {
	copy, _ := webi18n.Resolve(r)
	fragment := templates.Join(
		templates.PageHeading(copy.TitleOverview),
		templates.KPIRow(scoreKPIs()),
		templates.Panel(templates.HistogramSVG(copy.ChartDistribution, h.service.cohortScores(), 9)),
		templates.KPIRow(outcomeKPIs()),
		templates.Prose(copy.ImpactStoryTitle, copy.ImpactStoryBody),
		templates.Panel(templates.BarChartSVG(h.service.topScoresChart(copy))),
		templates.Panel(templates.BarChartSVG(h.service.programTotalsChart(copy))),
		templates.PageHeading(copy.HighlightsTitle),
		templates.HighlightList(highlights()),
	)
	page := pagerender.Page{
		Title:    copy.TitleOverview,
		Path:     routepath.Overview,
		Fragment: fragment,
	}
	if err := pagerender.WritePage(w, r, page); err != nil {
		weberror.WriteAppError(w, r, http.StatusInternalServerError)
	}
}

// handleDrilldown turns a chart click into navigation: 303 to the mapped
// target, 204 when the element has no mapping.
func (h handlers) handleDrilldown(w http.ResponseWriter, r *http.Request) {
	elementKey := r.URL.Query().Get(routepath.DrilldownElementParam)
	command, err := h.service.resolve(elementKey)
	if err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}
	http.Redirect(w, r, command.TargetPath, http.StatusSeeOther)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound)
}
