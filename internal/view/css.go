package view

import (
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
)

// CSSLink is a stylesheet loaded through a <link> element.
type CSSLink struct {
	// Href is the URL of the stylesheet.
	Href string
}

// CSSInline is a stylesheet embedded in the page in a <style> element.
type CSSInline struct {
	// TemplatePath is the path of the stylesheet within the Site's
	// TemplateDir. Its contents are embedded verbatim.
	TemplatePath string
}

// CSSLinker is an interface that Components can fulfill to link to
// stylesheets. The <link> elements are made available to the template as
// part of .CSS.
type CSSLinker interface {
	LinkCSS(context.Context) []CSSLink
}

// CSSEmbedder is an interface that Components can fulfill to embed
// stylesheets directly in the page. The <style> elements are made available
// to the template as part of .CSS.
type CSSEmbedder interface {
	EmbedCSS(context.Context) []CSSInline
}

// getComponentCSS builds the markup for every stylesheet component and its
// dependencies link to or embed. Each resource appears once; a Component's
// dependencies come before the Component itself, and links come before
// embedded stylesheets.
func getComponentCSS(ctx context.Context, site Site, component Component) (template.HTML, error) {
	var links []CSSLink
	var inlines []CSSInline
	seenLinks := map[string]struct{}{}
	seenInlines := map[string]struct{}{}
	for _, comp := range getDependencyOrder(ctx, component) {
		if linker, ok := comp.(CSSLinker); ok {
			for _, link := range linker.LinkCSS(ctx) {
				if _, ok := seenLinks[link.Href]; ok {
					continue
				}
				seenLinks[link.Href] = struct{}{}
				links = append(links, link)
			}
		}
		if embedder, ok := comp.(CSSEmbedder); ok {
			for _, inline := range embedder.EmbedCSS(ctx) {
				if _, ok := seenInlines[inline.TemplatePath]; ok {
					continue
				}
				seenInlines[inline.TemplatePath] = struct{}{}
				inlines = append(inlines, inline)
			}
		}
	}
	var out strings.Builder
	for _, link := range links {
		fmt.Fprintf(&out, "<link rel=\"stylesheet\" href=\"%s\">\n", template.HTMLEscapeString(link.Href))
	}
	for _, inline := range inlines {
		contents, err := getResource(ctx, site, inline.TemplatePath)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&out, "<style>\n%s\n</style>\n", contents)
	}
	return template.HTML(out.String()), nil // #nosec G203
}

func getResource(ctx context.Context, site Site, path string) (string, error) {
	cache, canCache := site.(ResourceCacher)
	if canCache {
		if cached := cache.GetCachedResource(ctx, path); cached != nil {
			return *cached, nil
		}
	}
	contents, err := fs.ReadFile(site.TemplateDir(ctx), path)
	if err != nil {
		return "", fmt.Errorf("error reading %q: %w", path, err)
	}
	resource := strings.TrimSpace(string(contents))
	if canCache {
		cache.SetCachedResource(ctx, path, resource)
	}
	return resource, nil
}
