package view_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/graphul-rs/website/internal/view"
)

type ErrorSite struct {
	*view.CachedSite
}

func (ErrorSite) ServerErrorPage(_ context.Context) view.Page {
	return ErrorPage{}
}

// BrokenPage asks for a template that doesn't exist.
type BrokenPage struct{}

func (BrokenPage) Templates(_ context.Context) []string {
	return []string{"missing.html.tmpl"}
}

func (BrokenPage) Key(_ context.Context) string {
	return "missing.html.tmpl"
}

func (BrokenPage) ExecutedTemplate(_ context.Context) string {
	return "missing.html.tmpl"
}

type ErrorPage struct{}

func (ErrorPage) Templates(_ context.Context) []string {
	return []string{"server_error.html.tmpl"}
}

func (ErrorPage) Key(_ context.Context) string {
	return "server_error.html.tmpl"
}

func (ErrorPage) ExecutedTemplate(_ context.Context) string {
	return "server_error.html.tmpl"
}

func ExampleRender_serverError() {
	var templates = staticFS{
		"server_error.html.tmpl": `
<!doctype html>
<html lang="en">
	<head>
		<title>Server Error</title>
	</head>
	<body>
		<h1>Server error</h1>
	</body>
</html>`,
	}

	ctx := view.LoggingContext(context.Background(), slog.New(slog.DiscardHandler))

	site := ErrorSite{CachedSite: view.NewCachedSite(templates)}
	view.Render(ctx, os.Stdout, site, BrokenPage{})

	//Output:
	// <!doctype html>
	// <html lang="en">
	// 	<head>
	// 		<title>Server Error</title>
	// 	</head>
	// 	<body>
	// 		<h1>Server error</h1>
	// 	</body>
	// </html>
}
