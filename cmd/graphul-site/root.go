package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/graphul-rs/website/internal/config"
	"github.com/graphul-rs/website/internal/logging"
	"github.com/graphul-rs/website/internal/site"
	"github.com/graphul-rs/website/internal/view"
	"github.com/graphul-rs/website/web"
)

// app is what every subcommand needs, built from the loaded configuration.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	site   *site.Site
}

func newRootCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:           "graphul-site",
		Short:         "The Graphul website",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	cmd.AddCommand(newServeCmd(&configPath), newBuildCmd(&configPath))
	return cmd
}

func loadApp(ctx context.Context, configPath string) (context.Context, *app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return ctx, nil, err
	}
	logger, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return ctx, nil, err
	}
	templates := web.Templates()
	if cfg.Site.TemplateDir != "" {
		templates = os.DirFS(cfg.Site.TemplateDir)
		logger.InfoContext(ctx, "loading templates from disk", "dir", cfg.Site.TemplateDir)
	}
	if _, err := fs.Stat(templates, "pages/layout.html.tmpl"); err != nil {
		return ctx, nil, fmt.Errorf("template directory is missing the layout: %w", err)
	}
	s := site.New(templates, site.Options{
		BaseURL:      cfg.Site.BaseURL,
		DisableCache: !cfg.Site.TemplateCache,
	})
	return view.LoggingContext(ctx, logger), &app{cfg: cfg, logger: logger, site: s}, nil
}
