package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tutorial-landing/pkg/models"
	"tutorial-landing/pkg/services"
)

// ErrUnsupportedFormat is returned for export formats other than json
var ErrUnsupportedFormat = errors.New("unsupported export format (supported formats: json)")

// newExportCmd creates a new command for exporting video data
func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [format]",
		Short: "Export video data",
		Long:  `Export the video sequence in the specified format. Currently supported formats: json.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := "json"
			if len(args) > 0 {
				format = args[0]
			}
			if format != "json" {
				return fmt.Errorf("%s: %w", format, ErrUnsupportedFormat)
			}

			svc, err := newService()
			if err != nil {
				return err
			}
			return exportData(cmd, svc)
		},
	}
}

// exportData writes the video sequence in page order
func exportData(cmd *cobra.Command, svc *services.Service) error {
	videos, err := svc.GetVideos()
	if err != nil {
		return err
	}
	if videos == nil {
		videos = []models.Video{}
	}

	data, err := json.MarshalIndent(videos, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling data: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
