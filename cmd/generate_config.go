package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tutorial-landing/pkg/config"
	"tutorial-landing/pkg/generator"
	applog "tutorial-landing/pkg/log"
	"tutorial-landing/pkg/videoconfig"
	"tutorial-landing/pkg/youtube"
)

const sampleFile = "sample-urls.txt"

// Command options
var writeSample bool

// newGenerateConfigCmd creates a new command for generating the video config from oEmbed data
func newGenerateConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate-config <urls.txt> [output.js]",
		Short: "Generate the video config from a list of YouTube URLs",
		Long: `Read YouTube URLs (one per line, # starts a comment), look up each video through
the public oEmbed endpoint and write the video config script. The output defaults to the
VIDEO_CONFIG file.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if writeSample {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.RangeArgs(1, 2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if writeSample {
				if err := generator.WriteSample(sampleFile); err != nil {
					return err
				}
				fmt.Printf("Created %s\n", sampleFile)
				fmt.Printf("Edit it and run: tutorial-landing generate-config %s\n", sampleFile)
				return nil
			}

			cfg, err := LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			output := cfg.VideoConfig
			if len(args) > 1 {
				output = args[1]
			}

			logger := applog.WithComponent("generate-config")
			fetcher := youtube.NewOEmbedFetcher(cfg.OEmbedURL, config.RequestTimeout, logger)
			return generateConfig(cmd, args[0], output, fetcher, func(entries []generator.Entry) error {
				return videoconfig.WriteFile(output, generator.Videos(entries), videoconfig.HeaderOEmbed)
			})
		},
	}

	cmd.Flags().BoolVar(&writeSample, "sample", false, "Write "+sampleFile+" with example URLs and exit")

	return cmd
}

// generateConfig reads the URL list, fetches every video in order and hands the
// entries to write. Shared by both generators.
func generateConfig(cmd *cobra.Command, input, output string, fetcher youtube.Fetcher, write func([]generator.Entry) error) error {
	logger := applog.WithComponent("generator")

	sources, err := generator.ReadURLFile(input, logger)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return fmt.Errorf("%s: %w", input, generator.ErrNoVideos)
	}

	logger.Info().Int("count", len(sources)).Str("input", input).Msg("processing video URLs")

	entries, err := generator.New(fetcher, config.RequestDelay, logger).Run(cmd.Context(), sources)
	if err != nil {
		return fmt.Errorf("generation interrupted: %w", err)
	}

	if err := write(entries); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	fmt.Printf("Generated %s with %d videos\n", output, len(entries))
	return nil
}
