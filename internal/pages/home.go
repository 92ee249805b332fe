package pages

import (
	"context"

	"github.com/graphul-rs/website/internal/blocks"
	"github.com/graphul-rs/website/internal/view"
)

// Home is the homepage: the hero, then every feature block in order.
type Home struct {
	Meta
	Layout Layout
	Hero   blocks.Hero
	Blocks []blocks.Block
}

// NewHome returns the homepage as authored.
func NewHome() Home {
	return Home{
		Meta: Meta{
			Title:       "Graphul",
			Description: "Graphul is an Express inspired web framework for Rust, built for speed and a friendly syntax.",
			Path:        "/",
		},
		Layout: Layout{},
		Hero:   blocks.Main(),
		Blocks: blocks.Home(),
	}
}

// Templates includes the block templates directly so a Home with no blocks
// still parses.
func (Home) Templates(ctx context.Context) []string {
	return append([]string{"pages/home.html.tmpl"}, blocks.Block{}.Templates(ctx)...)
}

func (h Home) UseComponents(_ context.Context) []view.Component {
	components := []view.Component{h.Layout, h.Hero}
	for _, block := range h.Blocks {
		components = append(components, block)
	}
	return components
}

func (Home) Key(_ context.Context) string {
	return "pages/home"
}

func (Home) ExecutedTemplate(_ context.Context) string {
	return layoutTemplate
}
