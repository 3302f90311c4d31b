package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tutorial-landing/pkg/export"
	applog "tutorial-landing/pkg/log"
	"tutorial-landing/pkg/render"
	"tutorial-landing/pkg/services"
)

// Command options
var renderOut string

// newRenderCmd creates a new command for exporting the landing page as static files
func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the landing page as a static site",
		Long: `Render the featured view (index.html), the full view (all.html) and one page per
video with its player open (play/<id>.html), and copy the public assets next to them.
The result can be uploaded with the publish command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			c, err := services.NewService(cfg, nil, applog.WithComponent("content")).Content()
			if err != nil {
				return err
			}

			renderer, err := render.NewPugRenderer(cfg.ViewsDir, "index.pug")
			if err != nil {
				return err
			}

			written, err := export.New(renderer, applog.WithComponent("render")).Export(c, renderOut, cfg.PublicDir)
			if err != nil {
				return err
			}

			fmt.Printf("Rendered %d files into %s\n", len(written), renderOut)
			return nil
		},
	}

	cmd.Flags().StringVarP(&renderOut, "out", "o", "dist", "Output directory")

	return cmd
}
