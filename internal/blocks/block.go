// Package blocks holds the sections the Graphul homepage is built from. Every
// block is plain data authored in source: a title, a description, and an
// optional code sample. Blocks have no state and render the same way every
// time.
package blocks

import (
	"context"

	"github.com/graphul-rs/website/internal/view"
)

const blockTemplate = "blocks/block.html.tmpl"

// Block is a feature section: text on the left, an optional code sample on
// the right.
type Block struct {
	// ID is the section's anchor on the page.
	ID          string
	Title       string
	Description string
	Code        *CodeBlock
}

// Templates always includes the code template, whether or not this Block has
// a sample, so that the block template can refer to it.
func (Block) Templates(_ context.Context) []string {
	return []string{blockTemplate, codeTemplate}
}

func (b Block) UseComponents(_ context.Context) []view.Component {
	if b.Code == nil {
		return nil
	}
	return []view.Component{*b.Code}
}

func (Block) EmbedCSS(_ context.Context) []view.CSSInline {
	return []view.CSSInline{
		{TemplatePath: "css/block.css"},
	}
}

// HasCode reports whether the Block shows a code sample.
func (b Block) HasCode() bool {
	return b.Code != nil
}
