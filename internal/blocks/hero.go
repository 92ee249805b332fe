package blocks

import (
	"context"

	"github.com/graphul-rs/website/internal/view"
)

// Link is a call to action.
type Link struct {
	Label string
	Href  string
	// Primary links get the filled button style.
	Primary bool
}

// Hero is the block at the top of the homepage introducing the product.
type Hero struct {
	Title       string
	Tagline     string
	Description string
	Links       []Link
	Code        *CodeBlock
}

func (Hero) Templates(_ context.Context) []string {
	return []string{"blocks/hero.html.tmpl", codeTemplate}
}

func (h Hero) UseComponents(_ context.Context) []view.Component {
	if h.Code == nil {
		return nil
	}
	return []view.Component{*h.Code}
}

func (Hero) EmbedCSS(_ context.Context) []view.CSSInline {
	return []view.CSSInline{
		{TemplatePath: "css/hero.css"},
	}
}
