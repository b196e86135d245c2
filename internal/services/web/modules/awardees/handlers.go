package awardees

import (
	"fmt"
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

func (h handlers) handleExplorer(w http.ResponseWriter, r *http.Request) {
	copy, _ := webi18n.Resolve(r)
	headers, rows := h.service.explorerTable(copy)
	fragment := templates.Join(
		templates.PageHeading(copy.TitleExplorer),
		templates.Panel(templates.DataTable(headers, rows)),
	)
	page := pagerender.Page{
		Title:    copy.TitleExplorer,
		Path:     routepath.Awardees,
		Fragment: fragment,
	}
	if err := pagerender.WritePage(w, r, page); err != nil {
		weberror.WriteAppError(w, r, http.StatusInternalServerError)
	}
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	copy, _ := webi18n.Resolve(r)
	data, err := h.service.detail(r.PathValue("id"), copy)
	if err != nil {
		weberror.WriteModuleError(w, r, err)
		return
	}

	awardee := data.Awardee
	pubHeaders, pubRows := publicationsTable(awardee, copy)
	subtitle := fmt.Sprintf("%s • %s: %d", awardee.Field, copy.TableAwardYear, awardee.AwardYear)
	fragment := templates.Join(
		templates.BackLink(copy.BackToOverview, routepath.Overview),
		templates.PageHeading(awardee.Name),
		templates.Prose(subtitle, ""),
		templates.KPIRow(data.KPIs),
		templates.Panel(templates.BarChartSVG(data.Breakdown)),
		templates.Panel(templates.SeriesChartSVG(copy.ChartTimeline, data.Timeline)),
		templates.Panel(templates.Join(
			templates.PageHeading(copy.PublicationsTitle),
			templates.DataTable(pubHeaders, pubRows),
		)),
	)
	page := pagerender.Page{
		Title:    awardee.Name,
		Path:     routepath.Awardees,
		Fragment: fragment,
	}
	if err := pagerender.WritePage(w, r, page); err != nil {
		weberror.WriteAppError(w, r, http.StatusInternalServerError)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound)
}
