package main

import (
	"github.com/spf13/cobra"
	"github.com/vango-dev/slider/internal/config"
	"github.com/vango-dev/slider/internal/errors"
	"github.com/vango-dev/slider/pkg/publish"
)

func exportCmd(c *cli) *cobra.Command {
	var (
		state        stateFlags
		exp          config.ExportConfig
		name         string
		cacheControl string
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Upload a static slider page to S3",
		Long: `Render the slider as a static HTML page and upload it to an S3
bucket (or any S3-compatible store via --endpoint).

Credentials come from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and
AWS_SESSION_TOKEN.

Examples:
  slider export --bucket my-site --key widgets/slider.html
  slider export --endpoint http://localhost:9000 --path-style --bucket dev`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			fs := cmd.Flags()
			if fs.Changed("bucket") {
				cfg.Export.Bucket = exp.Bucket
			}
			if fs.Changed("prefix") {
				cfg.Export.Prefix = exp.Prefix
			}
			if fs.Changed("region") {
				cfg.Export.Region = exp.Region
			}
			if fs.Changed("endpoint") {
				cfg.Export.Endpoint = exp.Endpoint
			}
			if fs.Changed("path-style") {
				cfg.Export.PathStyle = exp.PathStyle
			}
			if cfg.Export.Bucket == "" {
				return errors.New(errors.CodeExportNoBucket).
					WithSuggestion("Pass --bucket or set export.bucket in slider.json")
			}

			s, err := state.resolve(cmd, cfg)
			if err != nil {
				return err
			}
			html, err := renderSlider(cmd.Context(), c.logger, s, renderOptions{
				page:  true,
				title: cfg.Server.Title,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dryRun {
				info(out, "Would upload %d bytes to s3://%s/%s", len(html), cfg.Export.Bucket, cfg.ExportKey(name))
				return nil
			}

			client := c.newClient(publish.ClientOptions{
				Region:    cfg.Export.Region,
				Endpoint:  cfg.Export.Endpoint,
				PathStyle: cfg.Export.PathStyle,
			})
			pub := publish.NewPublisher(client, cfg.Export.Bucket,
				publish.WithPrefix(cfg.Export.Prefix),
				publish.WithCacheControl(cacheControl),
				publish.WithLogger(c.logger))

			if name == "" {
				name = config.DefaultExportKey
			}
			res, err := pub.Publish(cmd.Context(), name, html)
			if err != nil {
				return errors.FromError(err, errors.CodeExportFailed)
			}
			success(out, "Exported %s (%d bytes)", res.URL(), res.Size)
			return nil
		},
	}

	addStateFlags(cmd, &state)
	cmd.Flags().StringVarP(&exp.Bucket, "bucket", "b", "", "Target bucket")
	cmd.Flags().StringVarP(&name, "key", "k", "", "Object name (default "+config.DefaultExportKey+")")
	cmd.Flags().StringVar(&exp.Prefix, "prefix", "", "Key prefix")
	cmd.Flags().StringVar(&exp.Region, "region", "", "AWS region (default $AWS_REGION)")
	cmd.Flags().StringVar(&exp.Endpoint, "endpoint", "", "S3 endpoint override")
	cmd.Flags().BoolVar(&exp.PathStyle, "path-style", false, "Use path-style addressing")
	cmd.Flags().StringVar(&cacheControl, "cache-control", "", "Cache-Control header for the object")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Render and print the target without uploading")

	return cmd
}
