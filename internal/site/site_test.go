package site

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphul-rs/website/internal/pages"
	"github.com/graphul-rs/website/internal/view"
	"github.com/graphul-rs/website/web"
)

func TestCanonical(t *testing.T) {
	t.Parallel()

	s := New(web.Templates(), Options{BaseURL: "https://graphul.rs/"})
	assert.Equal(t, "https://graphul.rs/", s.Canonical("/"))
	assert.Equal(t, "https://graphul.rs/docs", s.Canonical("docs"))
	assert.Empty(t, s.Canonical(""))

	s = New(web.Templates(), Options{})
	assert.Empty(t, s.Canonical("/"))
}

func TestYear(t *testing.T) {
	t.Parallel()

	now := time.Date(2030, time.December, 31, 23, 59, 0, 0, time.UTC)
	s := New(web.Templates(), Options{Now: func() time.Time { return now }})
	var first bytes.Buffer
	require.NoError(t, view.Execute(context.Background(), &first, s, pages.NewHome()))
	assert.Contains(t, first.String(), "&copy; 2030 Graphul")

	// the parsed templates are cached, but the year isn't
	now = now.Add(time.Hour)
	var second bytes.Buffer
	require.NoError(t, view.Execute(context.Background(), &second, s, pages.NewHome()))
	assert.Contains(t, second.String(), "&copy; 2031 Graphul")
	assert.Equal(t, 2031, s.Year())
}

func TestServerErrorPage(t *testing.T) {
	t.Parallel()

	s := New(web.Templates(), Options{})
	assert.Equal(t, pages.ServerError{}, s.ServerErrorPage(context.Background()))
}

func TestDisableCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	templates := fstest.MapFS{
		"page.tmpl": {Data: []byte("v1")},
	}
	cached := New(templates, Options{})
	uncached := New(templates, Options{DisableCache: true})

	for _, s := range []*Site{cached, uncached} {
		s.SetCachedResource(ctx, "key", "value")
	}
	require.NotNil(t, cached.GetCachedResource(ctx, "key"))
	assert.Nil(t, uncached.GetCachedResource(ctx, "key"))
}

func TestExport(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")
	s := New(web.Templates(), Options{BaseURL: "https://graphul.rs"})
	require.NoError(t, Export(context.Background(), s, web.Static(), dir))

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "<title>Graphul</title>")
	assert.Contains(t, string(index), "<h3>Robust Routing</h3>")

	notFound, err := os.ReadFile(filepath.Join(dir, "404.html"))
	require.NoError(t, err)
	assert.Contains(t, string(notFound), "Page not found")

	css, err := os.ReadFile(filepath.Join(dir, "static", "css", "site.css"))
	require.NoError(t, err)
	assert.Contains(t, string(css), ".nav")

	// a second export overwrites the first
	require.NoError(t, Export(context.Background(), s, web.Static(), dir))
}

func TestExportRenderError(t *testing.T) {
	t.Parallel()

	s := New(fstest.MapFS{}, Options{})
	err := Export(context.Background(), s, web.Static(), t.TempDir())
	require.ErrorIs(t, err, view.ErrTemplatePatternMatchesNoFiles)
}
