package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

// Panel wraps content in the shared card chrome.
func Panel(inner templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="panel">`); err != nil {
			return err
		}
		if inner != nil {
			if err := inner.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

// KPI describes one metric card.
type KPI struct {
	Title string
	Value string
	Sub   string
	Delta string
	// BarPct fills the progress strip; values are clamped to [0, 100].
	BarPct int
}

// KPIRow renders a grid of metric cards.
func KPIRow(cards []KPI) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="kpi-row">`); err != nil {
			return err
		}
		for _, card := range cards {
			pct := card.BarPct
			if pct < 0 {
				pct = 0
			}
			if pct > 100 {
				pct = 100
			}
			if _, err := fmt.Fprintf(w,
				`<section class="panel kpi"><div class="kpi-title">%s</div><div class="kpi-value">%s</div><div class="kpi-sub">%s</div>`+
					`<div class="kpi-track"><div class="kpi-fill" style="width:%d%%"></div></div>`,
				html.EscapeString(card.Title),
				html.EscapeString(card.Value),
				html.EscapeString(card.Sub),
				pct,
			); err != nil {
				return err
			}
			if card.Delta != "" {
				if _, err := fmt.Fprintf(w, `<div class="kpi-delta">▲ %s</div>`, html.EscapeString(card.Delta)); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</section>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// Cell is one table cell, optionally linked.
type Cell struct {
	Text string
	Href string
}

// Text builds an unlinked cell.
func Text(text string) Cell { return Cell{Text: text} }

// Link builds a linked cell.
func Link(text, href string) Cell { return Cell{Text: text, Href: href} }

// DataTable renders a simple header/rows table.
func DataTable(headers []string, rows [][]Cell) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<table class="data"><thead><tr>`); err != nil {
			return err
		}
		for _, header := range headers {
			if _, err := fmt.Fprintf(w, `<th>%s</th>`, html.EscapeString(header)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</tr></thead><tbody>`); err != nil {
			return err
		}
		for _, row := range rows {
			if _, err := io.WriteString(w, `<tr>`); err != nil {
				return err
			}
			for _, cell := range row {
				if cell.Href != "" {
					if _, err := fmt.Fprintf(w, `<td><a href="%s">%s</a></td>`,
						html.EscapeString(cell.Href), html.EscapeString(cell.Text)); err != nil {
						return err
					}
					continue
				}
				if _, err := fmt.Fprintf(w, `<td>%s</td>`, html.EscapeString(cell.Text)); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</tr>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	})
}

// Highlight is one entry in the overview recent-highlights list.
type Highlight struct {
	Initials string
	Name     string
	Label    string
	Ago      string
	Text     string
}

// HighlightList renders the overview recent-highlights cards.
func HighlightList(items []Highlight) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div class="highlights">`); err != nil {
			return err
		}
		for _, item := range items {
			if _, err := fmt.Fprintf(w,
				`<section class="panel highlight"><div class="avatar">%s</div><div class="highlight-body">`+
					`<div class="highlight-name">%s</div><div class="highlight-text">%s</div>`+
					`<div class="highlight-label">%s • %s</div></div></section>`,
				html.EscapeString(item.Initials),
				html.EscapeString(item.Name),
				html.EscapeString(item.Text),
				html.EscapeString(item.Label),
				html.EscapeString(item.Ago),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// Prose renders a titled paragraph panel.
func Prose(title, body string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<section class="panel prose"><div class="prose-title">%s</div><p>%s</p></section>`,
			html.EscapeString(title), html.EscapeString(body))
		return err
	})
}

// BackLink renders the detail-page return link.
func BackLink(label, href string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<a class="backlink" href="%s">%s</a>`,
			html.EscapeString(href), html.EscapeString(label))
		return err
	})
}
