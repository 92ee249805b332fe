package main

import (
	"github.com/spf13/cobra"

	"github.com/graphul-rs/website/internal/site"
	"github.com/graphul-rs/website/web"
)

func newBuildCmd(configPath *string) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the website as static files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, a, err := loadApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			err = site.Export(ctx, a.site, web.Static(), out)
			if err != nil {
				return err
			}
			a.logger.InfoContext(ctx, "exported site", "dir", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "dist", "directory to write the site to")
	return cmd
}
