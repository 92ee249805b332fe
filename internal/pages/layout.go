// Package pages defines the Pages the site serves.
package pages

import (
	"context"

	"github.com/graphul-rs/website/internal/view"
)

const layoutTemplate = "layout"

// Meta is the document metadata every page built on Layout provides.
type Meta struct {
	Title       string
	Description string
	// Path is the page's canonical path. Pages without one get no
	// canonical link.
	Path string
}

// Layout is the HTML document shared by every page: head, navigation and
// footer. Pages fill in its "body" block.
type Layout struct{}

func (Layout) Templates(_ context.Context) []string {
	return []string{"pages/layout.html.tmpl"}
}

func (Layout) LinkCSS(_ context.Context) []view.CSSLink {
	return []view.CSSLink{
		{Href: "/static/css/site.css"},
	}
}
