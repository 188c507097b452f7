package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/featuregrid/internal/builder"
	"github.com/vango-dev/featuregrid/internal/config"
	"github.com/vango-dev/featuregrid/internal/export"
)

func exportCmd(opts *rootOptions) *cobra.Command {
	var bf builderFlags

	cmd := &cobra.Command{
		Use:   "export [dir | s3://bucket/prefix]",
		Short: "Export a grid as static files",
		Long: `Write index.html, FeatureGrid.jsx and grid.json for a grid.

The target defaults to export.bucket in featuregrid.json when set, and
to export.dir otherwise. S3 credentials come from the standard AWS
environment.

Examples:
  featuregrid export
  featuregrid export ./public/grid --layout pyramid
  featuregrid export s3://marketing-previews/grids/ --theme purple`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			target, err := export.ParseTarget(exportTarget(a.cfg, args))
			if err != nil {
				return err
			}
			if err := bf.apply(cmd, &a.cfg.Builder); err != nil {
				return err
			}
			b, err := builder.New(a.cat, a.resolver(nil), builder.WithDefaults(a.cfg.Builder), builder.WithLogger(a.logger))
			if err != nil {
				return err
			}
			if err := bf.assignCards(b); err != nil {
				return err
			}

			ctx := cmd.Context()
			sink, err := export.NewSink(ctx, target, a.cfg.Export.Region)
			if err != nil {
				return err
			}
			written, err := export.New(sink, export.WithLogger(a.logger)).Export(ctx, b)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			success(out, "Exported to %s", target)
			for _, w := range written {
				info(out, "%s", w)
			}
			return nil
		},
	}

	bf.register(cmd)
	return cmd
}

// exportTarget picks the target from the argument or the configuration.
func exportTarget(cfg *config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if cfg.Export.Bucket != "" {
		return "s3://" + cfg.Export.Bucket + "/" + cfg.Export.Prefix
	}
	return cfg.ExportPath()
}
