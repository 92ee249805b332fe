// Package web holds the templates and static assets of the site, embedded
// into the binary at compile time.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates
var templates embed.FS

//go:embed static
var static embed.FS

// Templates returns the html/template files and inline stylesheets, rooted so
// that paths look like "pages/home.html.tmpl".
func Templates() fs.FS {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Static returns the files served under /static/, rooted so that paths look
// like "css/site.css".
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
