// Package site wires the embedded templates, the pages, and the renderer
// together into the Site every request is rendered against.
package site

import (
	"context"
	"html/template"
	"io/fs"
	"strings"
	"time"

	"github.com/graphul-rs/website/internal/pages"
	"github.com/graphul-rs/website/internal/view"
)

var _ view.Site = &Site{}
var _ view.ServerErrorPager = &Site{}
var _ view.FuncMapExtender = &Site{}

// Options configures a Site.
type Options struct {
	// BaseURL is the public origin of the site, e.g.
	// "https://graphul.rs". Canonical links are omitted when it's empty.
	BaseURL string

	// DisableCache turns off template and stylesheet caching, so edits
	// to a template directory show up on the next request.
	DisableCache bool

	// Now is used to stamp the footer. Defaults to time.Now.
	Now func() time.Time
}

// Site is the view.Site for the Graphul website.
type Site struct {
	*view.CachedSite

	BaseURL string

	now   func() time.Time
	cache bool
}

// New returns a Site rendering templates from the passed fs.FS.
func New(templates fs.FS, opts Options) *Site {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Site{
		CachedSite: view.NewCachedSite(templates),
		BaseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
		now:        now,
		cache:      !opts.DisableCache,
	}
}

// GetCachedTemplate always misses when caching is disabled.
func (s *Site) GetCachedTemplate(ctx context.Context, key string) *template.Template {
	if !s.cache {
		return nil
	}
	return s.CachedSite.GetCachedTemplate(ctx, key)
}

// GetCachedResource always misses when caching is disabled.
func (s *Site) GetCachedResource(ctx context.Context, key string) *string {
	if !s.cache {
		return nil
	}
	return s.CachedSite.GetCachedResource(ctx, key)
}

func (*Site) ServerErrorPage(_ context.Context) view.Page {
	return pages.ServerError{}
}

func (s *Site) FuncMap(_ context.Context) template.FuncMap {
	return template.FuncMap{
		"canonical": s.Canonical,
		"year":      s.Year,
	}
}

// Year returns the current year, for the footer. It's read on every render,
// so a long-running server rolls over with the calendar.
func (s *Site) Year() int {
	return s.now().Year()
}

// Canonical returns the absolute URL of path, or an empty string if either the
// Site has no BaseURL or path is empty.
func (s *Site) Canonical(path string) string {
	if s.BaseURL == "" || path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return s.BaseURL + path
}
