package site

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/graphul-rs/website/internal/pages"
	"github.com/graphul-rs/website/internal/view"
)

// Export writes the site to dir as plain files, for hosts that serve static
// HTML: index.html, 404.html, and the static assets under static/. Existing
// files are overwritten.
func Export(ctx context.Context, s *Site, static fs.FS, dir string) error {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return fmt.Errorf("error creating %q: %w", dir, err)
	}
	err = writePage(ctx, s, pages.NewHome(), filepath.Join(dir, "index.html"))
	if err != nil {
		return err
	}
	err = writePage(ctx, s, pages.NewNotFound(), filepath.Join(dir, "404.html"))
	if err != nil {
		return err
	}
	return copyStatic(ctx, static, filepath.Join(dir, "static"))
}

func writePage[PageType view.Page](ctx context.Context, s *Site, page PageType, path string) error {
	var buf bytes.Buffer
	err := view.Execute(ctx, &buf, s, page)
	if err != nil {
		return fmt.Errorf("error rendering %q: %w", path, err)
	}
	err = os.WriteFile(path, buf.Bytes(), 0o644) // #nosec G306
	if err != nil {
		return fmt.Errorf("error writing %q: %w", path, err)
	}
	view.Logger(ctx).InfoContext(ctx, "wrote page", "path", path, "bytes", buf.Len())
	return nil
}

func copyStatic(ctx context.Context, static fs.FS, dir string) error {
	return fs.WalkDir(static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(path))
		if d.IsDir() {
			err = os.MkdirAll(target, 0o755)
			if err != nil {
				return fmt.Errorf("error creating %q: %w", target, err)
			}
			return nil
		}
		contents, err := fs.ReadFile(static, path)
		if err != nil {
			return fmt.Errorf("error reading %q: %w", path, err)
		}
		err = os.WriteFile(target, contents, 0o644) // #nosec G306
		if err != nil {
			return fmt.Errorf("error writing %q: %w", target, err)
		}
		view.Logger(ctx).DebugContext(ctx, "copied static file", "path", target)
		return nil
	})
}
