// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"

	"github.com/sofealabs/impactboard/internal/impact"
)

const (
	Root               = "/"
	Health             = "/up"
	Overview           = "/overview"
	OverviewDrilldown  = "/overview/drilldown"
	AIS                = "/ais"
	EIS                = "/eis"
	HIS                = "/his"
	SIS                = "/sis"
	Awardees           = "/awardees"
	AwardeePrefix      = "/awardee/"
	AwardeePattern     = AwardeePrefix + "{id}"
	AwardeeRestPattern = AwardeePrefix + "{id}/{rest...}"
	StaticPrefix       = "/static/"

	// DrilldownElementParam names the query parameter carrying the clicked
	// chart element key.
	DrilldownElementParam = "element"
)

// Awardee returns the detail route for one awardee.
func Awardee(id string) string {
	return AwardeePrefix + escapeSegment(id)
}

// Program returns the dashboard route for one program page.
func Program(id impact.ProgramID) string {
	switch id {
	case impact.ProgramAIS:
		return AIS
	case impact.ProgramEIS:
		return EIS
	case impact.ProgramHIS:
		return HIS
	case impact.ProgramSIS:
		return SIS
	default:
		return Overview
	}
}

// Drilldown returns the overview drilldown route for one chart element key.
func Drilldown(elementKey string) string {
	return OverviewDrilldown + "?" + DrilldownElementParam + "=" + url.QueryEscape(elementKey)
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
