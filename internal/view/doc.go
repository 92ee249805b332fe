// Package view renders HTML pages out of Components, on top of the
// html/template package.
//
// A Component is a piece of an HTML document: it names the template files it
// needs, and optionally the Components it relies on, the CSS it links to or
// embeds, and the template functions it adds. A Page is a Component that gets
// rendered by itself rather than being included in another Component; it
// additionally knows which template to execute and what key its parsed
// templates can be cached under.
//
// A Site is the singleton that provides the fs.FS the templates live in. It is
// available at render time as .Site, and the Page being rendered is available
// as .Page. Sites can optionally cache parsed templates (TemplateCacher) and
// inline resources (ResourceCacher), and can offer a page to render when
// something goes wrong (ServerErrorPager). Embedding a *CachedSite gives a
// Site all of that except the error page.
//
// When a Component relies on another Component, make the dependency a field
// on the struct and return it from UseComponents, so its templates and CSS
// are pulled in whenever the parent is rendered.
package view
