package view

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/graphul-rs/website/internal/view"

var (
	// ErrNoTemplatePath is returned when a template path is needed, but
	// none are supplied.
	ErrNoTemplatePath = errors.New("need at least one template path")

	// ErrTemplatePatternMatchesNoFiles is returned when a template path is
	// a pattern, but that pattern doesn't match any files.
	ErrTemplatePatternMatchesNoFiles = errors.New("pattern matches no files")
)

// Component is a piece of UI that can be rendered to HTML.
type Component interface {
	// Templates returns the paths, or fs.Glob patterns, of the
	// html/template files that need to be parsed before the Component can
	// be rendered.
	Templates(context.Context) []string
}

// ComponentUser is an interface that a Component can optionally implement to
// list the Components it relies on. Their templates, CSS, and template
// functions are included whenever the Component is rendered.
type ComponentUser interface {
	// UseComponents returns the Components this Component relies on.
	UseComponents(context.Context) []Component
}

// FuncMapExtender is an interface that Components and Sites can fulfill to
// add to the functions available to templates.
type FuncMapExtender interface {
	// FuncMap returns the functions the Component is adding.
	FuncMap(context.Context) template.FuncMap
}

// Page is a Component that can be passed to Render. It defines a single
// logical page, composed of one or more Components, and holds all the data
// needed to render them.
type Page interface {
	Component

	// Key is the key the Page's parsed templates are cached under. It
	// must be consistent, and unique per set of templates.
	Key(context.Context) string

	// ExecutedTemplate is the name of the template to execute when
	// rendering the page. This is usually a base layout template that the
	// Page's own templates fill blocks in.
	ExecutedTemplate(context.Context) string
}

// RenderData is the data passed to the executed template.
type RenderData[SiteType Site, PageType Page] struct {
	// Site is the Site the Page is being rendered for.
	Site SiteType

	// Page is the Page being rendered.
	Page PageType

	// CSS holds <link> and <style> elements for every CSS resource
	// the Page's Components link to or embed.
	CSS template.HTML
}

// Render renders page to out. If that fails, the error is logged and a server
// error page is written instead: the Site's ServerErrorPage if it implements
// ServerErrorPager, otherwise a plain text message.
//
// If out is an io.Closer, it is closed once rendering is done.
func Render[SiteType Site, PageType Page](ctx context.Context, out io.Writer, site SiteType, page PageType) {
	defer func() {
		if closer, ok := out.(io.Closer); ok {
			err := closer.Close()
			if err != nil {
				logger(ctx).ErrorContext(ctx, "error closing output", "error", err)
			}
		}
	}()

	err := Execute(ctx, out, site, page)
	if err == nil {
		return
	}
	logger(ctx).ErrorContext(ctx, "error rendering page", "error", err, "page", fmt.Sprintf("%T", page))

	if pager, ok := Site(site).(ServerErrorPager); ok {
		err = Execute(ctx, out, site, pager.ServerErrorPage(ctx))
		if err != nil {
			// nothing left to fall back on
			logger(ctx).ErrorContext(ctx, "error rendering server error page", "error", err)
		}
		return
	}

	_, err = out.Write([]byte("Server error."))
	if err != nil {
		logger(ctx).ErrorContext(ctx, "error writing server error message", "error", err)
	}
}

// Execute renders page to out and returns any error encountered, without
// falling back to an error page. Output may have been partially written when
// an error is returned; callers that need all-or-nothing output should render
// into a buffer.
func Execute[SiteType Site, PageType Page](ctx context.Context, out io.Writer, site SiteType, page PageType) (err error) {
	key := page.Key(ctx)
	ctx, span := otel.Tracer(tracerName).Start(ctx, "view.Execute", trace.WithAttributes(
		attribute.String("view.page.key", key),
		attribute.String("view.page.type", fmt.Sprintf("%T", page)),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	tmpl, err := getTemplate(ctx, site, page, key)
	if err != nil {
		return err
	}
	css, err := getComponentCSS(ctx, site, page)
	if err != nil {
		return fmt.Errorf("error collecting CSS for %T: %w", page, err)
	}

	data := RenderData[SiteType, PageType]{
		Site: site,
		Page: page,
		CSS:  css,
	}

	executed := page.ExecutedTemplate(ctx)
	err = tmpl.ExecuteTemplate(out, executed, data)
	if err != nil {
		return fmt.Errorf("error executing template %q for %T: %w", executed, page, err)
	}
	return nil
}

func getTemplate(ctx context.Context, site Site, page Page, key string) (*template.Template, error) {
	if cache, ok := site.(TemplateCacher); ok {
		cached := cache.GetCachedTemplate(ctx, key)
		if cached != nil {
			return cached, nil
		}
	}
	tmplPaths := getComponentTemplatePaths(ctx, page)
	if len(tmplPaths) < 1 {
		return nil, fmt.Errorf("error rendering %T: %w", page, ErrNoTemplatePath)
	}
	funcMap := getComponentFuncMap(ctx, site, page)
	parsed, err := parseTemplates(site.TemplateDir(ctx), funcMap, tmplPaths...)
	if err != nil {
		return nil, fmt.Errorf("error parsing templates %v for page %T: %w", tmplPaths, page, err)
	}
	if cache, ok := site.(TemplateCacher); ok {
		cache.SetCachedTemplate(ctx, key, parsed)
	}
	return parsed, nil
}

// getRecursiveComponents lists component and everything it uses, parents
// before children.
func getRecursiveComponents(ctx context.Context, component Component) []Component {
	results := []Component{component}

	if uses, ok := component.(ComponentUser); ok {
		for _, child := range uses.UseComponents(ctx) {
			results = append(results, getRecursiveComponents(ctx, child)...)
		}
	}
	return results
}

// getDependencyOrder lists component and everything it uses, children before
// parents.
func getDependencyOrder(ctx context.Context, component Component) []Component {
	var results []Component
	if uses, ok := component.(ComponentUser); ok {
		for _, child := range uses.UseComponents(ctx) {
			results = append(results, getDependencyOrder(ctx, child)...)
		}
	}
	return append(results, component)
}

func getComponentTemplatePaths(ctx context.Context, component Component) []string {
	var results []string
	seen := map[string]struct{}{}
	for _, comp := range getRecursiveComponents(ctx, component) {
		for _, path := range comp.Templates(ctx) {
			if _, ok := seen[path]; ok {
				continue
			}
			results = append(results, path)
			seen[path] = struct{}{}
		}
	}
	return results
}

func getComponentFuncMap(ctx context.Context, site Site, component Component) template.FuncMap {
	results := template.FuncMap{}
	if fm, ok := site.(FuncMapExtender); ok {
		results = mergeFuncMaps(results, fm.FuncMap(ctx))
	}
	for _, comp := range getRecursiveComponents(ctx, component) {
		fm, ok := comp.(FuncMapExtender)
		if !ok {
			continue
		}
		results = mergeFuncMaps(results, fm.FuncMap(ctx))
	}
	return results
}

func parseTemplates(fsys fs.FS, funcs template.FuncMap, patterns ...string) (*template.Template, error) {
	var files []string
	for _, pattern := range patterns {
		list, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("error listing files for %q: %w", pattern, err)
		}
		if len(list) < 1 {
			return nil, fmt.Errorf("error parsing %q: %w", pattern, ErrTemplatePatternMatchesNoFiles)
		}
		files = append(files, list...)
	}
	if len(files) < 1 {
		return nil, ErrNoTemplatePath
	}
	tmpl := template.New("").Funcs(funcs)
	for _, file := range files {
		contents, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("error reading %q: %w", file, err)
		}
		_, err = tmpl.New(file).Parse(string(contents))
		if err != nil {
			return nil, fmt.Errorf("error parsing %q: %w", file, err)
		}
	}
	return tmpl, nil
}

// mergeFuncMaps flattens two FuncMaps into one, with the values in `over`
// overriding the values in `in` if they have the same keys.
func mergeFuncMaps(in template.FuncMap, over template.FuncMap) template.FuncMap {
	res := template.FuncMap{}
	for k, v := range in {
		res[k] = v
	}
	for k, v := range over {
		res[k] = v
	}
	return res
}
