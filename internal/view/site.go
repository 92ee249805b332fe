package view

import (
	"context"
	"html/template"
	"io/fs"
	"sync"
)

// Site is the singleton that Pages are rendered against. It surfaces the
// templates Components rely on as an fs.FS, and is available to templates as
// .Site, so it's a good home for configuration shared by every page.
type Site interface {
	// TemplateDir returns an fs.FS containing every template needed to
	// render every Page on the Site. The paths returned by Components'
	// Templates methods are resolved against it, as are CSSInline
	// template paths.
	TemplateDir(ctx context.Context) fs.FS
}

// TemplateCacher is an optional interface for Sites. Sites fulfilling it get
// their parsed templates cached under each Page's Key, so they aren't parsed
// on every render. The templates parsed for a key must be the same every
// time; the data they're executed with can still differ, so the output HTML
// is not cacheable.
type TemplateCacher interface {
	// GetCachedTemplate returns the *template.Template stored under key,
	// or nil if nothing is stored yet.
	GetCachedTemplate(ctx context.Context, key string) *template.Template

	// SetCachedTemplate stores tmpl under key. This is best-effort; errors
	// should be logged, not surfaced.
	SetCachedTemplate(ctx context.Context, key string, tmpl *template.Template)
}

// ResourceCacher is an optional interface for Sites. Sites fulfilling it get
// the contents of inline resources cached under their template path.
type ResourceCacher interface {
	// GetCachedResource returns the resource stored under key, or nil if
	// nothing is stored yet.
	GetCachedResource(ctx context.Context, key string) *string

	// SetCachedResource stores resource under key. This is best-effort;
	// errors should be logged, not surfaced.
	SetCachedResource(ctx context.Context, key, resource string)
}

// ServerErrorPager is an optional interface for Sites. If Render fails to
// render a Page, it renders the output of ServerErrorPage instead.
type ServerErrorPager interface {
	ServerErrorPage(ctx context.Context) Page
}

var _ Site = &CachedSite{}
var _ TemplateCacher = &CachedSite{}
var _ ResourceCacher = &CachedSite{}

// CachedSite is a Site that keeps parsed templates and inline resources in
// memory. It is meant to be embedded in other Site implementations. Its empty
// value is not usable; use NewCachedSite.
type CachedSite struct {
	templateCache   map[string]*template.Template
	templateCacheMu sync.RWMutex

	resourceCache   map[string]string
	resourceCacheMu sync.RWMutex

	templateDir fs.FS
}

// NewCachedSite returns a CachedSite serving templates from the passed fs.FS.
func NewCachedSite(templates fs.FS) *CachedSite {
	return &CachedSite{
		templateCache: map[string]*template.Template{},
		resourceCache: map[string]string{},
		templateDir:   templates,
	}
}

// GetCachedTemplate returns the template cached under key, or nil.
//
// It can safely be used by multiple goroutines.
func (s *CachedSite) GetCachedTemplate(_ context.Context, key string) *template.Template {
	s.templateCacheMu.RLock()
	defer s.templateCacheMu.RUnlock()
	return s.templateCache[key]
}

// SetCachedTemplate caches tmpl under key.
//
// It can safely be used by multiple goroutines.
func (s *CachedSite) SetCachedTemplate(_ context.Context, key string, tmpl *template.Template) {
	s.templateCacheMu.Lock()
	defer s.templateCacheMu.Unlock()
	s.templateCache[key] = tmpl
}

// GetCachedResource returns the resource cached under key, or nil.
//
// It can safely be used by multiple goroutines.
func (s *CachedSite) GetCachedResource(_ context.Context, key string) *string {
	s.resourceCacheMu.RLock()
	defer s.resourceCacheMu.RUnlock()
	res, ok := s.resourceCache[key]
	if !ok {
		return nil
	}
	return &res
}

// SetCachedResource caches resource under key.
//
// It can safely be used by multiple goroutines.
func (s *CachedSite) SetCachedResource(_ context.Context, key, resource string) {
	s.resourceCacheMu.Lock()
	defer s.resourceCacheMu.Unlock()
	s.resourceCache[key] = resource
}

// TemplateDir returns the fs.FS passed to NewCachedSite.
func (s *CachedSite) TemplateDir(_ context.Context) fs.FS {
	return s.templateDir
}
