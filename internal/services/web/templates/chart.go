package templates

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/sofealabs/impactboard/internal/impact"
)

// Bar is one element in a bar chart. Key identifies the element for the
// drilldown router; Href, when set, makes the bar a plain link so drilldown
// works without scripting.
type Bar struct {
	Key   string
	Label string
	Value float64
	Href  string
}

// BarChart is the chart-ready view model produced by module services.
type BarChart struct {
	Title string
	Bars  []Bar
}

const (
	chartWidth   = 720
	chartHeight  = 260
	chartPadLeft = 10
	chartPadTop  = 34
	chartPadBot  = 46
)

// BarChartSVG renders a bar chart as inline SVG.
func BarChartSVG(chart BarChart) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<figure class="chart"><svg viewBox="0 0 %d %d" role="img" aria-label="%s">`+
				`<text class="chart-title" x="%d" y="20">%s</text>`,
			chartWidth, chartHeight,
			html.EscapeString(chart.Title),
			chartPadLeft, html.EscapeString(chart.Title),
		); err != nil {
			return err
		}

		maxValue := 0.0
		for _, bar := range chart.Bars {
			if bar.Value > maxValue {
				maxValue = bar.Value
			}
		}
		plotHeight := float64(chartHeight - chartPadTop - chartPadBot)
		if len(chart.Bars) > 0 && maxValue > 0 {
			slot := float64(chartWidth-2*chartPadLeft) / float64(len(chart.Bars))
			barWidth := slot * 0.72
			for i, bar := range chart.Bars {
				barHeight := bar.Value / maxValue * plotHeight
				x := float64(chartPadLeft) + slot*float64(i) + (slot-barWidth)/2
				y := float64(chartPadTop) + plotHeight - barHeight
				rect := fmt.Sprintf(
					`<rect class="bar" data-element="%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f"><title>%s: %s</title></rect>`,
					html.EscapeString(bar.Key), x, y, barWidth, barHeight,
					html.EscapeString(bar.Label), html.EscapeString(trimFloat(bar.Value)),
				)
				if bar.Href != "" {
					rect = fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(bar.Href), rect)
				}
				if _, err := io.WriteString(w, rect); err != nil {
					return err
				}
				if _, err := fmt.Fprintf(w,
					`<text class="bar-label" x="%.1f" y="%d">%s</text>`,
					x+barWidth/2, chartHeight-28,
					html.EscapeString(shorten(bar.Label, 14)),
				); err != nil {
					return err
				}
			}
		}
		_, err := io.WriteString(w, `</svg></figure>`)
		return err
	})
}

// HistogramSVG buckets values into bins and renders them as a bar chart.
func HistogramSVG(title string, values []float64, bins int) templ.Component {
	if bins <= 0 {
		bins = 9
	}
	chart := BarChart{Title: title}
	if len(values) > 0 {
		low, high := values[0], values[0]
		for _, value := range values {
			if value < low {
				low = value
			}
			if value > high {
				high = value
			}
		}
		width := (high - low) / float64(bins)
		if width <= 0 {
			width = 1
		}
		counts := make([]int, bins)
		for _, value := range values {
			idx := int((value - low) / width)
			if idx >= bins {
				idx = bins - 1
			}
			counts[idx]++
		}
		for i, count := range counts {
			chart.Bars = append(chart.Bars, Bar{
				Label: fmt.Sprintf("%.1f–%.1f", low+width*float64(i), low+width*float64(i+1)),
				Value: float64(count),
			})
		}
	}
	return BarChartSVG(chart)
}

// Series is one named line in a trend chart.
type Series struct {
	Name   string
	Points []impact.MetricPoint
}

// SeriesChartSVG renders one or more metric series as polylines.
func SeriesChartSVG(title string, series []Series) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<figure class="chart"><svg viewBox="0 0 %d %d" role="img" aria-label="%s">`+
				`<text class="chart-title" x="%d" y="20">%s</text>`,
			chartWidth, chartHeight,
			html.EscapeString(title),
			chartPadLeft, html.EscapeString(title),
		); err != nil {
			return err
		}

		minPeriod, maxPeriod, maxValue := seriesBounds(series)
		plotWidth := float64(chartWidth - 2*chartPadLeft)
		plotHeight := float64(chartHeight - chartPadTop - chartPadBot)
		for i, line := range series {
			if len(line.Points) < 2 || maxValue <= 0 || maxPeriod == minPeriod {
				continue
			}
			var points []string
			for _, point := range line.Points {
				x := float64(chartPadLeft) + (float64(point.Period-minPeriod)/float64(maxPeriod-minPeriod))*plotWidth
				y := float64(chartPadTop) + plotHeight - (point.Value/maxValue)*plotHeight
				points = append(points, fmt.Sprintf("%.1f,%.1f", x, y))
			}
			if _, err := fmt.Fprintf(w,
				`<polyline class="line line-%d" fill="none" points="%s"><title>%s</title></polyline>`,
				i, strings.Join(points, " "), html.EscapeString(line.Name),
			); err != nil {
				return err
			}
		}
		if maxPeriod > minPeriod {
			if _, err := fmt.Fprintf(w,
				`<text class="bar-label" x="%d" y="%d">%d</text><text class="bar-label" x="%d" y="%d">%d</text>`,
				chartPadLeft+20, chartHeight-28, minPeriod,
				chartWidth-chartPadLeft-20, chartHeight-28, maxPeriod,
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</svg></figure>`)
		return err
	})
}

func seriesBounds(series []Series) (minPeriod, maxPeriod int, maxValue float64) {
	first := true
	for _, line := range series {
		for _, point := range line.Points {
			if first {
				minPeriod, maxPeriod = point.Period, point.Period
				first = false
			}
			if point.Period < minPeriod {
				minPeriod = point.Period
			}
			if point.Period > maxPeriod {
				maxPeriod = point.Period
			}
			if point.Value > maxValue {
				maxValue = point.Value
			}
		}
	}
	return minPeriod, maxPeriod, maxValue
}

func shorten(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(s, ".0")
}
