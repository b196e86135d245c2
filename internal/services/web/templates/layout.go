// Package templates holds the templ components shared by web modules.
package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/sofealabs/impactboard/internal/platform/branding"
	webi18n "github.com/sofealabs/impactboard/internal/services/web/platform/i18n"
	"github.com/sofealabs/impactboard/internal/services/web/routepath"
)

// NavLink is one entry in the top navigation.
type NavLink struct {
	Label string
	Href  string
}

// NavLinks returns the top navigation in display order.
func NavLinks(copy webi18n.Copy) []NavLink {
	return []NavLink{
		{Label: copy.NavOverview, Href: routepath.Overview},
		{Label: copy.NavAIS, Href: routepath.AIS},
		{Label: copy.NavEIS, Href: routepath.EIS},
		{Label: copy.NavHIS, Href: routepath.HIS},
		{Label: copy.NavSIS, Href: routepath.SIS},
		{Label: copy.NavExplorer, Href: routepath.Awardees},
	}
}

// AppLayout renders the full dashboard page shell around its children.
func AppLayout(title string, lang string, currentPath string, copy webi18n.Copy) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		if children == nil {
			children = templ.NopComponent
		}
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="%s"><head><meta charset="utf-8">`+
				`<meta name="viewport" content="width=device-width, initial-scale=1">`+
				`<title>%s | %s</title>`+
				`<link rel="stylesheet" href="%sapp.css"></head><body>`,
			html.EscapeString(lang),
			html.EscapeString(title),
			html.EscapeString(branding.AppName),
			routepath.StaticPrefix,
		); err != nil {
			return err
		}
		if err := topNav(currentPath, copy).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main class="page">`); err != nil {
			return err
		}
		if err := children.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

func topNav(currentPath string, copy webi18n.Copy) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<header class="topnav"><div class="wordmark"><div class="brand">sofea</div><div class="sub">%s</div></div><nav>`,
			html.EscapeString(branding.Tagline),
		); err != nil {
			return err
		}
		for _, link := range NavLinks(copy) {
			class := "navlink"
			if link.Href == currentPath {
				class = "navlink active"
			}
			if _, err := fmt.Fprintf(w, `<a class="%s" href="%s">%s</a>`,
				class, html.EscapeString(link.Href), html.EscapeString(link.Label)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</nav></header>`)
		return err
	})
}

// PageHeading renders the bold page title block.
func PageHeading(text string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1 class="heading">%s</h1>`, html.EscapeString(text))
		return err
	})
}

// Join renders components in sequence.
func Join(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, component := range components {
			if component == nil {
				continue
			}
			if err := component.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}
