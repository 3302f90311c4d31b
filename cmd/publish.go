package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	applog "tutorial-landing/pkg/log"
	"tutorial-landing/pkg/publish"
)

// Command options
var (
	publishDir  string
	listObjects bool
)

// newPublishCmd creates a new command for uploading the rendered site to a bucket
func newPublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the rendered site to Google Cloud Storage",
		Long: `Upload every file of a rendered site directory (see the render command) to the
BUCKET_NAME bucket, or list the objects already stored there with --list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			// Only publishing needs a bucket
			bucket, err := cfg.RequireBucket()
			if err != nil {
				return err
			}

			logger := applog.WithComponent("publish")
			publisher, err := publish.New(cmd.Context(), bucket, logger)
			if err != nil {
				return err
			}
			defer func() {
				if err := publisher.Close(); err != nil {
					logger.Warn().Err(err).Msg("error closing storage client")
				}
			}()

			if listObjects {
				return listBucket(cmd, publisher, bucket)
			}

			count, err := publisher.UploadDir(cmd.Context(), publishDir, func(step string, progress int) {
				logger.Info().Int("progress", progress).Msg(step)
			})
			if err != nil {
				return fmt.Errorf("publish stopped after %d files: %w", count, err)
			}

			fmt.Printf("Published %d files from %s to gs://%s\n", count, publishDir, bucket)
			return nil
		},
	}

	cmd.Flags().StringVarP(&publishDir, "dir", "d", "dist", "Rendered site directory to upload")
	cmd.Flags().BoolVarP(&listObjects, "list", "l", false, "List the objects in the bucket instead of uploading")

	return cmd
}

func listBucket(cmd *cobra.Command, publisher *publish.Publisher, bucket string) error {
	objects, err := publisher.List(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Objects in gs://%s:\n", bucket)
	var total int64
	for _, obj := range objects {
		fmt.Printf("  %-40s %10s  %s\n", obj.Name, formatSize(obj.Size), obj.ContentType)
		total += obj.Size
	}
	fmt.Printf("\nTotal: %d objects, %s\n", len(objects), formatSize(total))
	return nil
}

// formatSize converts bytes to a human-readable format
func formatSize(bytes int64) string {
	const (
		B  int64 = 1
		KB       = B * 1024
		MB       = KB * 1024
	)

	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
