package view_test

import (
	"bytes"
	"context"
	"log/slog"
	"slices"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/graphul-rs/website/internal/view"
)

type CachedSiteFeature struct{}

func (CachedSiteFeature) Templates(_ context.Context) []string {
	return []string{"base.tmpl", "feature.tmpl"}
}

func (CachedSiteFeature) Key(_ context.Context) string {
	return "feature.tmpl"
}

func (CachedSiteFeature) ExecutedTemplate(_ context.Context) string {
	return "base.tmpl"
}

type CachedSiteSample struct {
	IncludeCode bool
}

func (s CachedSiteSample) Templates(_ context.Context) []string {
	templates := []string{"base.tmpl", "sample.tmpl"}
	if s.IncludeCode {
		templates = append(templates, "code.tmpl")
	}
	return templates
}

func (CachedSiteSample) Key(_ context.Context) string {
	return "sample.tmpl"
}

func (CachedSiteSample) ExecutedTemplate(_ context.Context) string {
	return "base.tmpl"
}

type CachedSiteStyled struct{}

func (CachedSiteStyled) Templates(_ context.Context) []string {
	return []string{"styled.tmpl"}
}

func (CachedSiteStyled) Key(_ context.Context) string {
	return "styled.tmpl"
}

func (CachedSiteStyled) ExecutedTemplate(_ context.Context) string {
	return "styled.tmpl"
}

func (CachedSiteStyled) EmbedCSS(_ context.Context) []view.CSSInline {
	return []view.CSSInline{{TemplatePath: "styled.css"}}
}

func TestCachedSite(t *testing.T) {
	t.Parallel()

	ctx := view.LoggingContext(context.Background(), slog.Default())
	templateFS := fstest.MapFS(map[string]*fstest.MapFile{
		"feature.tmpl": {
			Data:    []byte(`{{ define "template_name" }}feature.tmpl{{ end }}`),
			Mode:    0777,
			ModTime: time.Now(),
		},
		"sample.tmpl": {
			Data:    []byte(`{{ define "template_name" }}sample.tmpl{{ if .Page.IncludeCode }} {{ block "code" . }}{{ end }}{{ end }}{{ end }}`),
			Mode:    0777,
			ModTime: time.Now(),
		},
		"code.tmpl": {
			Data:    []byte(`{{ define "code" }}included code.tmpl{{ end }}`),
			Mode:    0777,
			ModTime: time.Now(),
		},
		"base.tmpl": {
			Data:    []byte(`{{ block "template_name" . }}base.tmpl{{ end }}`),
			Mode:    0777,
			ModTime: time.Now(),
		},
		"styled.tmpl": {
			Data:    []byte(`{{ .CSS }}`),
			Mode:    0777,
			ModTime: time.Now(),
		},
		"styled.css": {
			Data:    []byte(`styled.css`),
			Mode:    0777,
			ModTime: time.Now(),
		},
	})
	// pages sharing a key must parse the same templates, so each case
	// gets its own site
	renderChangeAndRerender(t, ctx, templateFS, CachedSiteFeature{}, view.NewCachedSite(templateFS), "feature.tmpl", "feature.tmpl", "feature.tmpl")
	renderChangeAndRerender(t, ctx, templateFS, CachedSiteSample{}, view.NewCachedSite(templateFS), "sample.tmpl", "sample.tmpl", "sample.tmpl")
	renderChangeAndRerender(t, ctx, templateFS, CachedSiteSample{IncludeCode: true}, view.NewCachedSite(templateFS), "sample.tmpl", "sample.tmpl", "sample.tmpl included code.tmpl")
	renderChangeAndRerender(t, ctx, templateFS, CachedSiteStyled{}, view.NewCachedSite(templateFS), "styled.css", "styled.css", "<style>\nstyled.css\n</style>\n")
}

func renderChangeAndRerender(t *testing.T, ctx context.Context, fs fstest.MapFS, page view.Page, site view.Site, file, changed, expected string) {
	t.Helper()

	var out bytes.Buffer
	view.Render(ctx, &out, site, page)
	if output := out.String(); output != expected {
		t.Errorf("Expected to get %q, got %q", expected, output)
	}
	out.Reset()
	oldData := slices.Clone(fs[file].Data)
	fs[file].Data = []byte(strings.ReplaceAll(string(fs[file].Data), changed, "changed-"+changed))
	view.Render(ctx, &out, site, page)
	if output := out.String(); output != expected {
		t.Errorf("Expected to get %q after modifying underlying data, got %q", expected, output)
	}
	fs[file].Data = oldData
}
