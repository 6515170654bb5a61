package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/vango-dev/slider/pkg/render"
	"github.com/vango-dev/slider/pkg/server"
	"github.com/vango-dev/slider/pkg/slider"
	"github.com/vango-dev/slider/pkg/widget"
)

// renderOptions selects what renderSlider produces.
type renderOptions struct {
	page   bool // complete document with the stylesheet
	title  string
	pretty bool
	hids   bool
}

// renderSlider mounts a widget from state and serializes it.
func renderSlider(ctx context.Context, logger *slog.Logger, state slider.State, o renderOptions) ([]byte, error) {
	wd := widget.New(nil, state, widget.WithLogger(logger))
	doc := wd.Mount(ctx)

	rc := render.RendererConfig{EmitHIDs: o.hids, Pretty: o.pretty, Indent: "  "}
	if !o.page {
		html, err := wd.HTML(rc)
		if err != nil {
			return nil, err
		}
		return []byte(html), nil
	}

	var buf bytes.Buffer
	err := render.NewRenderer(rc).RenderPage(&buf, render.PageData{
		Body:   doc.Root(),
		Title:  o.title,
		Styles: []string{server.StyleSheet},
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderCmd(c *cli) *cobra.Command {
	var (
		state  stateFlags
		opts   renderOptions
		output string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the slider markup",
		Long: `Render the slider once and print its HTML.

The initial state comes from slider.json; the state flags override it.

Examples:
  slider render --value 30
  slider render --orientation vertical --max 5 --mark-steps --pretty
  slider render --page -o slider.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			s, err := state.resolve(cmd, cfg)
			if err != nil {
				return err
			}
			opts.title = cfg.Server.Title

			html, err := renderSlider(cmd.Context(), c.logger, s, opts)
			if err != nil {
				return err
			}
			if output != "" {
				if err := os.WriteFile(output, html, 0644); err != nil {
					return err
				}
				success(cmd.ErrOrStderr(), "Wrote %s (%d bytes)", output, len(html))
				return nil
			}
			out := cmd.OutOrStdout()
			out.Write(html)
			if !bytes.HasSuffix(html, []byte("\n")) {
				out.Write([]byte("\n"))
			}
			return nil
		},
	}

	addStateFlags(cmd, &state)
	cmd.Flags().BoolVar(&opts.page, "page", false, "Render a complete HTML document")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Indent the output")
	cmd.Flags().BoolVar(&opts.hids, "hids", false, "Emit data-hid attributes")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}
