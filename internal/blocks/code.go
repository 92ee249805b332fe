package blocks

import (
	"context"

	"github.com/graphul-rs/website/internal/view"
)

const codeTemplate = "blocks/code.html.tmpl"

// DefaultLanguage is the language code samples are marked up as when none is
// given.
const DefaultLanguage = "rust"

// CodeBlock displays a code sample verbatim in a window-style frame. The
// source is only escaped as HTML text; whitespace and line breaks are kept.
type CodeBlock struct {
	Source   string
	Language string
}

// Code returns a CodeBlock for a Rust sample.
func Code(source string) *CodeBlock {
	return &CodeBlock{Source: source, Language: DefaultLanguage}
}

func (CodeBlock) Templates(_ context.Context) []string {
	return []string{codeTemplate}
}

func (CodeBlock) EmbedCSS(_ context.Context) []view.CSSInline {
	return []view.CSSInline{
		{TemplatePath: "css/code.css"},
	}
}

// LanguageClass is the class the <code> element gets, following the
// language-* convention highlighters look for.
func (c CodeBlock) LanguageClass() string {
	if c.Language == "" {
		return "language-" + DefaultLanguage
	}
	return "language-" + c.Language
}
