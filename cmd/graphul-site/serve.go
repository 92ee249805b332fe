package main

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/graphul-rs/website/internal/server"
	"github.com/graphul-rs/website/internal/telemetry"
	"github.com/graphul-rs/website/web"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the website over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), *configPath)
		},
	}
}

func runServe(ctx context.Context, configPath string) (err error) {
	ctx, a, err := loadApp(ctx, configPath)
	if err != nil {
		return err
	}
	shutdown, err := telemetry.InitTracing(ctx, a.cfg.Tracing, os.Stdout)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, shutdown(context.WithoutCancel(ctx)))
	}()

	srv := server.New(a.cfg, a.site, web.Static(), a.logger, telemetry.NewMetrics())
	return srv.ListenAndServe(ctx)
}
