package blocks

import (
	"context"

	"github.com/graphul-rs/website/internal/view"
)

// Fragment is a Page rendering a single Block with no surrounding document.
// Its output is byte-for-byte the markup the Block contributes to a full
// page.
type Fragment struct {
	Block Block
}

func (Fragment) Templates(_ context.Context) []string {
	return []string{"blocks/fragment.html.tmpl"}
}

func (f Fragment) UseComponents(_ context.Context) []view.Component {
	return []view.Component{f.Block}
}

func (Fragment) Key(_ context.Context) string {
	return "blocks/fragment"
}

func (Fragment) ExecutedTemplate(_ context.Context) string {
	return "fragment"
}
