package pages

import (
	"context"

	"github.com/graphul-rs/website/internal/view"
)

// NotFound is rendered, with a 404 status, for paths the site doesn't serve.
type NotFound struct {
	Meta
	Layout Layout
}

func NewNotFound() NotFound {
	return NotFound{
		Meta: Meta{
			Title:       "Page Not Found | Graphul",
			Description: "The page you are looking for does not exist.",
		},
	}
}

func (NotFound) Templates(_ context.Context) []string {
	return []string{"pages/not_found.html.tmpl"}
}

func (n NotFound) UseComponents(_ context.Context) []view.Component {
	return []view.Component{n.Layout}
}

// EmbedCSS includes the block styles the 404 message is laid out with.
func (NotFound) EmbedCSS(_ context.Context) []view.CSSInline {
	return []view.CSSInline{
		{TemplatePath: "css/block.css"},
	}
}

func (NotFound) Key(_ context.Context) string {
	return "pages/not_found"
}

func (NotFound) ExecutedTemplate(_ context.Context) string {
	return layoutTemplate
}

// ServerError is rendered when another page fails to render. It uses no
// other Components, so it has as few ways to fail as possible.
type ServerError struct{}

func (ServerError) Templates(_ context.Context) []string {
	return []string{"pages/server_error.html.tmpl"}
}

func (ServerError) Key(_ context.Context) string {
	return "pages/server_error"
}

func (ServerError) ExecutedTemplate(_ context.Context) string {
	return "server_error"
}
