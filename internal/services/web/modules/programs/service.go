package programs

import (
	"fmt"
	"sort"

	"github.com/sofealabs/impactboard/internal/impact"
	webi18n "github.com/sofealabs/impactboard/internal/services/web/platform/i18n"
	"github.com/sofealabs/impactboard/internal/services/web/routepath"
	"github.com/sofealabs/impactboard/internal/services/web/templates"
)

type service struct {
	store *impact.Store
}

// pageData is the shaped view model for one program page.
type pageData struct {
	Program  impact.Program
	Chart    templates.BarChart
	Trend    []templates.Series
	Headers  []string
	Rows     [][]templates.Cell
	PagePath string
}

func (s service) page(id impact.ProgramID, copy webi18n.Copy) (pageData, error) {
	program, err := s.store.Program(id)
	if err != nil {
		return pageData{}, err
	}
	awardees := s.store.Awardees(id)
	sort.SliceStable(awardees, func(i, j int) bool {
		if awardees[i].Metrics.Score != awardees[j].Metrics.Score {
			return awardees[i].Metrics.Score > awardees[j].Metrics.Score
		}
		return awardees[i].ID < awardees[j].ID
	})

	chart := templates.BarChart{Title: program.Name + " — " + copy.TableAwardee}
	rows := make([][]templates.Cell, 0, len(awardees))
	for _, awardee := range awardees {
		href := routepath.Awardee(awardee.ID)
		chart.Bars = append(chart.Bars, templates.Bar{
			Key:   awardee.ID,
			Label: awardee.Name,
			Value: awardee.Metrics.Score,
			Href:  href,
		})
		rows = append(rows, []templates.Cell{
			templates.Link(awardee.Name, href),
			templates.Text(awardee.Field),
			templates.Text(fmt.Sprintf("%d", awardee.AwardYear)),
			templates.Text(fmt.Sprintf("%.1f", awardee.Metrics.Score)),
		})
	}

	return pageData{
		Program:  program,
		Chart:    chart,
		Trend:    []templates.Series{{Name: program.Name, Points: program.Series}},
		Headers:  []string{copy.TableAwardee, copy.TableField, copy.TableAwardYear, copy.TableScore},
		Rows:     rows,
		PagePath: routepath.Program(id),
	}, nil
}

// title picks the localized program page heading.
func title(id impact.ProgramID, copy webi18n.Copy) string {
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
		return copy.TitleOverview
	}
}
