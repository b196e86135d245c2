package overview

import (
	"fmt"
	"sort"

	"github.com/sofealabs/impactboard/internal/impact"
	"github.com/sofealabs/impactboard/internal/services/web/drilldown"
	webi18n "github.com/sofealabs/impactboard/internal/services/web/platform/i18n"
	"github.com/sofealabs/impactboard/internal/services/web/templates"
)

// scoreElementPrefix and programElementPrefix namespace the chart element
// keys so awardee and program bars never collide in the resolver.
const (
	scoreElementPrefix   = "score:"
	programElementPrefix = "program:"
)

type service struct {
	store    *impact.Store
	resolver *drilldown.Resolver
}

func newService(store *impact.Store) (service, error) {
	if store == nil {
		return service{}, fmt.Errorf("overview: store is required")
	}
	resolver, err := drilldown.NewResolver(chartElements(store))
	if err != nil {
		return service{}, fmt.Errorf("overview: build drilldown resolver: %w", err)
	}
	return service{store: store, resolver: resolver}, nil
}

// chartElements maps every bar on the overview charts to its target.
func chartElements(store *impact.Store) []drilldown.Element {
	var elements []drilldown.Element
	for _, awardee := range store.AllAwardees() {
		elements = append(elements, drilldown.Element{
			Key:    scoreElementPrefix + awardee.ID,
			Target: drilldown.Target{Kind: drilldown.TargetAwardee, ID: awardee.ID},
		})
	}
	for _, program := range store.Programs() {
		elements = append(elements, drilldown.Element{
			Key:    programElementPrefix + string(program.ID),
			Target: drilldown.Target{Kind: drilldown.TargetProgram, ID: string(program.ID)},
		})
	}
	return elements
}

func (s service) resolve(elementKey string) (drilldown.Command, error) {
	return s.resolver.Resolve(drilldown.Payload{ElementKey: elementKey})
}

// topScoresChart orders every awardee by composite score and links each bar
// to its detail page through the resolver.
func (s service) topScoresChart(copy webi18n.Copy) templates.BarChart {
	awardees := s.store.AllAwardees()
	sort.SliceStable(awardees, func(i, j int) bool {
		if awardees[i].Metrics.Score != awardees[j].Metrics.Score {
			return awardees[i].Metrics.Score > awardees[j].Metrics.Score
		}
		return awardees[i].ID < awardees[j].ID
	})
	chart := templates.BarChart{Title: copy.ChartTopScores}
	for _, awardee := range awardees {
		key := scoreElementPrefix + awardee.ID
		command, err := s.resolve(key)
		if err != nil {
			continue
		}
		chart.Bars = append(chart.Bars, templates.Bar{
			Key:   key,
			Label: awardee.Name,
			Value: awardee.Metrics.Score,
			Href:  command.TargetPath,
		})
	}
	return chart
}

// programTotalsChart shows per-program aggregate scores; bars link to the
// program pages.
func (s service) programTotalsChart(copy webi18n.Copy) templates.BarChart {
	aggregates := s.store.OverviewAggregate()
	chart := templates.BarChart{Title: copy.ChartProgramTotals}
	for _, program := range s.store.Programs() {
		key := programElementPrefix + string(program.ID)
		command, err := s.resolve(key)
		if err != nil {
			continue
		}
		chart.Bars = append(chart.Bars, templates.Bar{
			Key:   key,
			Label: program.Name,
			Value: aggregates[program.ID].TotalScore,
			Href:  command.TargetPath,
		})
	}
	return chart
}

func (s service) cohortScores() []float64 {
	return s.store.CohortScores()
}

// scoreKPIs is the first overview card row.
func scoreKPIs() []templates.KPI {
	return []templates.KPI{
		{Title: "Avg SOFEA Score", Value: "8.7 /10", Sub: "STD: ±1.2", Delta: "+0.5", BarPct: 87},
		{Title: "Avg UQS (Academic)", Value: "7.9 /10", Sub: "Based on 1,245 papers", Delta: "+0.3", BarPct: 79},
		{Title: "Avg TA-EIS (Economic)", Value: "6.4 /10", Sub: "Based on 187 ventures", Delta: "+1.2", BarPct: 64},
		{Title: "Avg Years Since Award", Value: "4.3 years", Sub: "Range: 0.5–12 years", Delta: "+0.2", BarPct: 43},
	}
}

// outcomeKPIs is the second overview card row.
func outcomeKPIs() []templates.KPI {
	return []templates.KPI{
		{Title: "% with oRCR > 1", Value: "78%", Sub: "Industry avg: 52%", Delta: "+3%", BarPct: 78},
		{Title: "% with NIH grants > $1M", Value: "42%", Sub: "Industry avg: 23%", Delta: "+5%", BarPct: 42},
		{Title: "% of companies founded", Value: "15%", Sub: "Industry avg: 8%", Delta: "+2%", BarPct: 15},
		{Title: "Total capital raised", Value: "$1.2B", Sub: "Avg per venture: $8.7M", Delta: "+$320M", BarPct: 70},
	}
}

// highlights returns the recent-highlights cards shown under the charts.
func highlights() []templates.Highlight {
	return []templates.Highlight{
		{
			Initials: "SC",
			Name:     "Dr. Sarah Chen (2019)",
			Label:    "Top Publication",
			Ago:      "2 days ago",
			Text:     "Published breakthrough paper in Nature with oRCR of 3.8 (top 1%).",
		},
		{
			Initials: "EJ",
			Name:     "Dr. Emily Johnson (2020)",
			Label:    "Funding Success",
			Ago:      "1 week ago",
			Text:     "Secured $12M Series A for Immuno-Therapeutics startup.",
		},
		{
			Initials: "JW",
			Name:     "Dr. James Washington (2018)",
			Label:    "NIH Award",
			Ago:      "2 weeks ago",
			Text:     "Received $3.5M NIH R01 grant to expand research into novel approaches.",
		},
	}
}
