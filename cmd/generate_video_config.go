package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/api/option"

	"tutorial-landing/pkg/config"
	"tutorial-landing/pkg/generator"
	applog "tutorial-landing/pkg/log"
	"tutorial-landing/pkg/videoconfig"
	"tutorial-landing/pkg/youtube"
)

// Command options
var (
	inputFile  string
	outputFile string
)

// newGenerateVideoConfigCmd creates a new command for generating the video config from the Data API
func newGenerateVideoConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate-video-config",
		Short: "Generate the video config using the YouTube Data API",
		Long: `Look up every URL of the input list through the YouTube Data API v3, order the
videos newest first and flag the most recent ones as new. Requires an API key
(YOUTUBE_API_KEY or --api-key).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			key, err := cfg.RequireAPIKey()
			if err != nil {
				return err
			}

			var opts []option.ClientOption
			if cfg.DataAPIURL != "" {
				opts = append(opts, option.WithEndpoint(cfg.DataAPIURL))
			}

			logger := applog.WithComponent("data-api")
			fetcher, err := youtube.NewDataAPIFetcher(cmd.Context(), key, config.RequestTimeout, config.DescriptionLimit, logger, opts...)
			if err != nil {
				return err
			}

			output := outputFile
			if output == "" {
				output = cfg.VideoConfig
			}

			return generateConfig(cmd, inputFile, output, fetcher, func(entries []generator.Entry) error {
				return videoconfig.WriteFile(output, generator.Rank(entries, config.NewVideos), videoconfig.HeaderDataAPI)
			})
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "urls.txt", "File with one YouTube URL per line")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Video config script to write (default VIDEO_CONFIG)")

	return cmd
}
