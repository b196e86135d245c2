package awardees

import (
	"fmt"

	"github.com/sofealabs/impactboard/internal/impact"
	apperrors "github.com/sofealabs/impactboard/internal/services/web/platform/errors"
	webi18n "github.com/sofealabs/impactboard/internal/services/web/platform/i18n"
	"github.com/sofealabs/impactboard/internal/services/web/routepath"
	"github.com/sofealabs/impactboard/internal/services/web/templates"
)

type service struct {
	store *impact.Store
}

// explorerTable shapes every awardee into one table of summary columns.
func (s service) explorerTable(copy webi18n.Copy) ([]string, [][]templates.Cell) {
	headers := []string{
		copy.TableAwardee, "Program", copy.TableField, copy.TableAwardYear,
		copy.TableScore, "Publications", "Grants", "Capital ($M)",
	}
	awardees := s.store.AllAwardees()
	rows := make([][]templates.Cell, 0, len(awardees))
	for _, awardee := range awardees {
		rows = append(rows, []templates.Cell{
			templates.Link(awardee.Name, routepath.Awardee(awardee.ID)),
			templates.Link(string(awardee.Program), routepath.Program(awardee.Program)),
			templates.Text(awardee.Field),
			templates.Text(fmt.Sprintf("%d", awardee.AwardYear)),
			templates.Text(fmt.Sprintf("%.1f", awardee.Metrics.Score)),
			templates.Text(fmt.Sprintf("%d", awardee.Metrics.Publications)),
			templates.Text(fmt.Sprintf("%d", awardee.Metrics.Grants)),
			templates.Text(fmt.Sprintf("%.1f", awardee.Metrics.CapitalM)),
		})
	}
	return headers, rows
}

// detailData is the shaped view model for one detail page.
type detailData struct {
	Awardee   impact.Awardee
	KPIs      []templates.KPI
	Breakdown templates.BarChart
	Timeline  []templates.Series
}

func (s service) detail(id string, copy webi18n.Copy) (detailData, error) {
	awardee, err := s.store.Awardee(id)
	if err != nil {
		return detailData{}, apperrors.E(apperrors.KindNotFound, fmt.Sprintf("awardee %q not found", id))
	}

	kpis := []templates.KPI{{
		Title:  "SOFEA Score",
		Value:  fmt.Sprintf("%.1f", awardee.Metrics.Score),
		Sub:    "Composite",
		BarPct: int(awardee.Metrics.Score * 10),
	}}
	breakdown := templates.BarChart{Title: copy.ChartBreakdown + " — " + awardee.Name}
	for _, bucket := range impact.Breakdown(awardee) {
		kpis = append(kpis, templates.KPI{
			Title:  string(bucket.Program),
			Value:  fmt.Sprintf("%.1f", bucket.Score),
			Sub:    programSub(bucket.Program, copy),
			BarPct: int(bucket.Score * 10),
		})
		breakdown.Bars = append(breakdown.Bars, templates.Bar{
			Key:   string(bucket.Program),
			Label: string(bucket.Program),
			Value: bucket.Score,
		})
	}

	publications, grants := impact.Timeline(awardee)
	timeline := []templates.Series{
		{Name: "Publications", Points: publications},
		{Name: "Grants", Points: grants},
	}

	return detailData{
		Awardee:   awardee,
		KPIs:      kpis,
		Breakdown: breakdown,
		Timeline:  timeline,
	}, nil
}

// publicationsTable shapes the per-awardee publication records.
func publicationsTable(awardee impact.Awardee, copy webi18n.Copy) ([]string, [][]templates.Cell) {
	headers := []string{copy.TableYear, copy.TableJournal, copy.TableORCR}
	rows := make([][]templates.Cell, 0, len(awardee.Publications))
	for _, publication := range awardee.Publications {
		rows = append(rows, []templates.Cell{
			templates.Text(fmt.Sprintf("%d", publication.Year)),
			templates.Text(publication.Journal),
			templates.Text(fmt.Sprintf("%.2f", publication.ORCR)),
		})
	}
	return headers, rows
}

func programSub(id impact.ProgramID, copy webi18n.Copy) string {
	switch id {
	case impact.ProgramAIS:
		return copy.NavAIS
	case impact.ProgramEIS:
		return copy.NavEIS
	case impact.ProgramHIS:
		return copy.NavHIS
	case impact.ProgramSIS:
		return copy.NavSIS
	default:
		return ""
	}
}
